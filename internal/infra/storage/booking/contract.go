package booking

import "github.com/consultly/booking-service/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД:
// репозиторий одинаково работает с *sql.DB и оберткой с метриками
type DBExecutor = dbmetrics.DBExecutor
