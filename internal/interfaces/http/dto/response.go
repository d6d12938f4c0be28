package dto

import "time"

// Response is the standard API envelope.
type Response struct {
	Success     bool       `json:"success"`
	Data        any        `json:"data,omitempty"`
	Filters     any        `json:"filters,omitempty"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
	Error       *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the stable error code and human message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewReportResponse creates the JSON-format report envelope: the bundle
// plus the filters that produced it and the generation timestamp.
func NewReportResponse(data, filters any, generatedAt time.Time) Response {
	return Response{
		Success:     true,
		Data:        data,
		Filters:     filters,
		GeneratedAt: &generatedAt,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// ReportFilters echoes the recognized filter values back on JSON report
// responses. Zero values are omitted.
type ReportFilters struct {
	Status         string `json:"status,omitempty"`
	ServiceType    string `json:"serviceType,omitempty"`
	Priority       string `json:"priority,omitempty"`
	PaymentStatus  string `json:"paymentStatus,omitempty"`
	Category       string `json:"category,omitempty"`
	LeaveType      string `json:"leaveType,omitempty"`
	Role           string `json:"role,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	TechnicianID   string `json:"technicianId,omitempty"`
	EmployeeID     string `json:"employeeId,omitempty"`
	LowStock       bool   `json:"lowStock,omitempty"`
	OutOfStock     bool   `json:"outOfStock,omitempty"`
	DateFrom       string `json:"dateFrom,omitempty"`
	DateTo         string `json:"dateTo,omitempty"`
}

// AvailableReport describes one report type the caller's role may
// request.
type AvailableReport struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Formats []string `json:"formats"`
}
