package school

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is an offset/limit window over a listing.
type Page struct {
	Skip  int
	Limit int
}

func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

// Normalize clamps negative values and oversized limits.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
