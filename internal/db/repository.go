package db

import (
	"context"
	"time"
)

// Conversion is one stored conversion request.
type Conversion struct {
	ID        int64
	Standard  string
	Direction string
	Input     string
	Output    string
	CreatedAt time.Time
}

type CreateConversionParams struct {
	Standard  string
	Direction string
	Input     string
	Output    string
}

// ListConversionsParams filters history; an empty Standard matches all.
type ListConversionsParams struct {
	Standard string
	Limit    int32
	Offset   int32
}

// StandardCount is the number of stored conversions for one standard.
type StandardCount struct {
	Standard string
	Count    int64
}

// Repository defines the interface for conversion history storage
type Repository interface {
	CreateConversion(ctx context.Context, arg CreateConversionParams) (Conversion, error)
	GetConversion(ctx context.Context, id int64) (Conversion, error)
	ListConversions(ctx context.Context, arg ListConversionsParams) ([]Conversion, error)
	CountConversions(ctx context.Context, standard string) (int64, error)
	CountConversionsByStandard(ctx context.Context) ([]StandardCount, error)
	DeleteConversionsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}
