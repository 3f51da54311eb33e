// Package dto содержит транспортные структуры REST API.
// Доменные entities наружу не отдаем: формат ответа не должен
// меняться вслед за внутренней моделью.
package dto

type PingResponse struct {
	Message string `json:"message"`
}

type CreateResponse struct {
	ID int64 `json:"id"`
}
