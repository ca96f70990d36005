package presentation

const (
	IDParam   = "id"
	SizeParam = "size"
)
