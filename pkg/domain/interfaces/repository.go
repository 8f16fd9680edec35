package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Risk() RiskRepository
	Complaint() ComplaintRepository

	// Close releases any resources held by the backend
	Close() error
}
