package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// gRPC
	FieldGRPCMethod = "grpc_method"
	FieldGRPCCode   = "grpc_code"

	// CAS numbers
	FieldCASNumber  = "cas_number"
	FieldCount      = "count"
	FieldBatchID    = "batch_id"
	FieldFixtureKey = "fixture_key"
)
