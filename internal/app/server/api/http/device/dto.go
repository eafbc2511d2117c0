package device

import "snipmark/internal/domain/device"

type listOutput struct {
	Body []device.Device
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name string `json:"device_name" doc:"Имя устройства, уникально" minLength:"1" maxLength:"80"`
}

type createOutput struct {
	Body device.Device
}

type deleteInput struct {
	ID int `path:"id" example:"1" doc:"ID устройства"`
}

type deleteOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
