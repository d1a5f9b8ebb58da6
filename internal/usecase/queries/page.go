package queries

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page is offset pagination. Number is zero-based.
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size int) Page {
	if number < 0 {
		number = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Limit() int32 {
	return int32(p.Size)
}

func (p Page) Offset() int32 {
	return int32(p.Number * p.Size)
}
