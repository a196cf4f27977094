package room

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

var roomColumns = []string{
	"id",
	"room_type",
	"price",
	"room_no",
	"status",
	"images",
	"amenities",
	"features",
}

// Repository чтение каталога номеров. Номера в этом сервисе только читаются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAvailable возвращает номера со статусом Available, отсортированные по номеру комнаты
func (r *Repository) ListAvailable(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"status": string(domain.RoomAvailable)}).
		OrderBy("room_no ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailable - %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %v", ErrScanRow, err)
	}

	return room, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// roomFeaturesRow jsonb-описание номера в том виде, в каком оно лежит в БД
type roomFeaturesRow struct {
	Size        string `json:"size"`
	BedType     string `json:"bed_type"`
	View        string `json:"view"`
	Bathroom    string `json:"bathroom"`
	Workspace   bool   `json:"workspace"`
	Kitchenette bool   `json:"kitchenette"`
}

// scanRoom читает строку и применяет значения по умолчанию.
// Это единственное место, где данные каталога нормализуются.
func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room      domain.Room
		roomType  sql.NullString
		price     sql.NullFloat64
		roomNo    sql.NullString
		status    sql.NullString
		images    []string
		amenities []string
		features  []byte
	)

	if err := row.Scan(
		&room.ID,
		&roomType,
		&price,
		&roomNo,
		&status,
		pq.Array(&images),
		pq.Array(&amenities),
		&features,
	); err != nil {
		return nil, err
	}

	room.RoomType = roomType.String
	room.RoomNo = roomNo.String

	room.Price = price.Float64
	if room.Price < 0 {
		room.Price = 0
	}

	room.Status = domain.RoomStatus(status.String)
	if room.Status != domain.RoomAvailable {
		room.Status = domain.RoomUnavailable
	}

	room.Images = images
	if room.Images == nil {
		room.Images = []string{}
	}
	room.Amenities = dedupe(amenities)

	parsed, err := parseFeatures(features)
	if err != nil {
		return nil, fmt.Errorf("decode features of room %s: %v", room.ID, err)
	}
	room.Features = parsed

	return &room, nil
}

// parseFeatures накладывает заполненные поля из БД поверх значений по умолчанию
func parseFeatures(raw []byte) (domain.RoomFeatures, error) {
	features := domain.DefaultRoomFeatures()
	if len(raw) == 0 {
		return features, nil
	}

	var row roomFeaturesRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return features, err
	}

	// пустые строки не перетирают значения по умолчанию
	if err := copier.CopyWithOption(&features, &row, copier.Option{IgnoreEmpty: true}); err != nil {
		return features, err
	}

	return features, nil
}

func dedupe(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
