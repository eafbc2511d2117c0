package source

type markdownInput struct {
	ID      int    `path:"id" example:"1" doc:"ID источника"`
	Exclude string `query:"exclude" example:"title,thumbnail" doc:"Секции, исключаемые из документа, через запятую"`
}

type markdownOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type deleteInput struct {
	ID int `path:"id" example:"1" doc:"ID источника"`
}

type deleteOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
