package cache

import "fmt"

// Key builders. Every logical resource gets its own prefix and carries the
// parameters that discriminate one request from another, so distinct
// resources never collide and identical requests always share a key.

func TodayAttendanceKey(employeeID, date string) string {
	return fmt.Sprintf("attendance:today:%s:%s", employeeID, date)
}

func EmployeeDirectoryKey(page, limit int) string {
	return fmt.Sprintf("employees:directory:%d:%d", page, limit)
}

func EmployeeKey(employeeID string) string {
	return fmt.Sprintf("employees:one:%s", employeeID)
}

func DocumentListKey(page, limit int) string {
	return fmt.Sprintf("documents:list:%d:%d", page, limit)
}

func DocumentKey(documentID string) string {
	return fmt.Sprintf("documents:one:%s", documentID)
}

func LeaveRequestsKey(employeeID, status string, page, limit int) string {
	return fmt.Sprintf("leaves:list:%s:%s:%d:%d", employeeID, status, page, limit)
}

func HolidaysKey(startDate, endDate string) string {
	return fmt.Sprintf("calendar:holidays:%s:%s", startDate, endDate)
}

func NoticeListKey(page, limit int) string {
	return fmt.Sprintf("notices:list:%d:%d", page, limit)
}

func PolicyKey(policyKey string) string {
	return fmt.Sprintf("settings:policy:%s", policyKey)
}

func GeofenceKey() string {
	return "settings:geofence"
}
