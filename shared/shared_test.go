package shared_test

import (
	"parkease/shared"
	"parkease/shared/constant"
	"parkease/shared/dto"
	"testing"
	"time"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		Status     string `db:"status"`
		Name       string `db:"name"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
	}

	tests := []struct {
		name     string
		data     interface{}
		username string
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				Status:  "Cancelled",
				Name:    "John Doe",
				NoDBTag: "ignored",
			},
			username: "testuser",
			expected: map[string]any{
				"status": "Cancelled",
				"name":   "John Doe",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			username: "testuser",
			expected: map[string]any{},
		},
		{
			name: "struct with partial fields",
			data: TestStruct{
				Name: "Jane Doe",
			},
			username: "admin",
			expected: map[string]any{
				"name": "Jane Doe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if result[constant.FieldModifiedAt] == nil {
				t.Error("expected modified_at to be set")
			}

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, value := range tt.expected {
				if result[key] != value {
					t.Errorf("expected %s to be %v, got %v", key, value, result[key])
				}
			}
		})
	}
}

func TestFilterByField(t *testing.T) {
	filter := shared.FilterByField("john@example.com", "email", "users")

	where, args := filter.GetWhereClause()

	if where != "(users.email = :email)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["email"] != "john@example.com" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(42), "id", "bookings")

	where, args := filter.GetWhereClause()

	if where != "(bookings.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["id"] != int64(42) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []any
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "booking:list",
			parts:    nil,
			expected: "booking:list",
		},
		{
			name:     "string part",
			prefix:   "user:profile",
			parts:    []any{"john@example.com"},
			expected: "user:profile:john@example.com",
		},
		{
			name:     "mixed parts",
			prefix:   "limiter",
			parts:    []any{"10.0.0.1", 8080},
			expected: "limiter:10.0.0.1:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "start_time", SortDir: dto.SortDirDesc}
	filter := shared.FilterByField("USER001", "custom_id", "users")

	first := shared.BuildCacheKeyWithQuery("booking:list", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:list", params, shared.FilterByField("USER002", "custom_id", "users"))

	if first == second {
		t.Error("expected distinct queries to produce distinct cache keys")
	}

	again := shared.BuildCacheKeyWithQuery("booking:list", params, filter)
	if first != again {
		t.Error("expected the same query to produce a stable cache key")
	}
}
