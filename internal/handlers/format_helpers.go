package handlers

import (
	"fmt"
	"time"

	"github.com/miyabidining/table-reservation-api/internal/models"
)

var jpWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// formatDateJP renders "2006-01-02" as 2006年1月2日(曜).
func formatDateJP(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}

	return fmt.Sprintf(
		"%d年%d月%d日(%s)",
		d.Year(), int(d.Month()), d.Day(),
		jpWeekdays[int(d.Weekday())],
	)
}

// shareMessage builds the confirmation text the client may forward to
// friends. The reservation flow does not depend on it.
func shareMessage(r *models.Reservation) string {
	return fmt.Sprintf(
		"レストラン雅の予約が完了しました！\n\n📅 日時: %s %s\n👥 人数: %d名\n\nお店でお会いしましょう！",
		formatDateJP(r.Date), r.Time, r.Guests,
	)
}
