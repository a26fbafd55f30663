package domain

type contextKey string

const (
	KeyRequestID contextKey = "RequestID"
)
