package response

// Envelope is the uniform success wrapper. Failures render the matching
// {success:false, error} shape from pkg.AppError; together they let clients
// branch on the "success" field alone.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
