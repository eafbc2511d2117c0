package sync

import (
	"snipmark/internal/domain/export"
	"snipmark/internal/domain/sync"
)

type markdownInput struct {
	ID      int    `path:"id" example:"1" doc:"ID источника"`
	Latest  bool   `query:"latest" doc:"Отдать только сниппеты, добавленные после отметки синхронизации"`
	Exclude string `query:"exclude" example:"title,thumbnail" doc:"Секции, исключаемые из документа, через запятую"`
}

type markdownOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type ackInput struct {
	ID int `path:"id" example:"1" doc:"ID источника"`
}

type ackOutput struct {
	Body sync.Record
}

type listOutput struct {
	Body []export.SourceExport
}
