package model

// WebResponse — стандартный конверт успешного ответа: {"data": ...}
type WebResponse[T any] struct {
	Data T `json:"data"`
}

// WebResponseWithPaging — конверт ответа списков: {"data": ..., "paging": ...}
type WebResponseWithPaging[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// ErrorResponse — конверт ответа с ошибкой
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// Paging описывает состояние пагинации списка.
// TotalPage считается как ceil(total/limit).
type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Limit       int `json:"limit"`
}
