package room

import "github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"

// DBExecutor *sql.DB, *dbmetrics.DB или транзакция
type DBExecutor = dbmetrics.DBExecutor
