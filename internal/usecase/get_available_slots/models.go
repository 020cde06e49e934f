package get_available_slots

// Request модель запроса доступных слотов на дату
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со списком слотов
type Response struct {
	Date           string
	AvailableSlots []string
}
