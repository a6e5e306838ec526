package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCtrl struct {
	db    *gorm.DB
	start time.Time
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db, start: time.Now()} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.pingDB(ctx)
	schema := check{OK: db.OK}
	if db.OK {
		schema = h.checkSchema(ctx)
	}

	ok := db.OK && schema.OK
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, echo.Map{
		"status":     echo.Map{"ok": ok},
		"uptime_sec": int(time.Since(h.start).Seconds()),
		"checks": echo.Map{
			"database": db,
			"schema":   schema,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) pingDB(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

// checkSchema confirms the three tables are present.
func (h *HealthCtrl) checkSchema(ctx context.Context) check {
	var n int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('farmers','crops','production')`).
		Scan(&n).Error
	if err != nil {
		return check{Err: "schema: " + err.Error()}
	}
	if n != 3 {
		return check{Err: "schema: missing tables"}
	}
	return check{OK: true}
}
