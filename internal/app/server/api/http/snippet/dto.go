package snippet

import "snipmark/internal/domain/snippet"

type createInput struct {
	Body snippet.CreateRequest
}

type createOutput struct {
	Body snippet.Snippet
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID сниппета"`
	Body updateRequest
}

type updateRequest struct {
	Text string `json:"text" doc:"Новый текст сниппета" minLength:"1"`
}

type updateOutput struct {
	Body snippet.Snippet
}

type deleteInput struct {
	ID int `path:"id" example:"1" doc:"ID сниппета"`
}

type deleteOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
