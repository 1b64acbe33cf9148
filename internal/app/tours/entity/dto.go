package entity

// CreateTourPackageRequest - запрос на создание пакета туров
type CreateTourPackageRequest struct {
	Code string `json:"code" validate:"required,len=2,alpha"`
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// UpdateTourPackageRequest - запрос на переименование пакета
type UpdateTourPackageRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// CreateTourRequest - запрос на создание тура
type CreateTourRequest struct {
	Title           string  `json:"title" validate:"required,min=2,max=100"`
	Description     string  `json:"description" validate:"max=2000"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	Duration        string  `json:"duration" validate:"max=32"`
	Region          string  `json:"region" validate:"omitempty"`
	TourPackageCode string  `json:"tour_package_code" validate:"required,len=2"`
}

// RatingRequest - тело POST и PUT для оценки тура.
// tour_id приходит из пути, не из тела - защита от рассинхронизации.
// При PUT comment перезаписывается безусловно: отсутствующее поле
// обнуляет сохраненный комментарий (семантика полной замены).
type RatingRequest struct {
	CustomerID int     `json:"customer_id" validate:"required,gt=0"`
	Score      int     `json:"score" validate:"required,min=1,max=5"`
	Comment    *string `json:"comment" validate:"omitempty,max=255"`
}

// RatingPatchRequest - тело PATCH: меняются только переданные поля.
// Указатели отличают "поле не прислали" от нулевого значения.
type RatingPatchRequest struct {
	CustomerID int     `json:"customer_id" validate:"required,gt=0"`
	Score      *int    `json:"score" validate:"omitempty,min=1,max=5"`
	Comment    *string `json:"comment" validate:"omitempty,max=255"`
}

// RatingPageResponse - страница оценок тура с метаданными
type RatingPageResponse struct {
	Ratings []TourRating `json:"ratings"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	Size    int          `json:"size"`
}

// AverageResponse - средняя оценка тура.
// Ключ "Average" - часть внешнего контракта, регистр важен.
type AverageResponse struct {
	Average float64 `json:"Average"`
}

// TourPackageListResponse - ответ со списком пакетов
type TourPackageListResponse struct {
	Packages []TourPackage `json:"packages"`
	Total    int           `json:"total"`
}

// TourListResponse - ответ со списком туров
type TourListResponse struct {
	Tours []Tour `json:"tours"`
	Total int    `json:"total"`
}

// RegionListResponse - ответ со списком регионов
type RegionListResponse struct {
	Regions []Region `json:"regions"`
	Total   int      `json:"total"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse - стандартный ответ об успехе
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
