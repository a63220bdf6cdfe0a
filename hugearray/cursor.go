package hugearray

// Cursor yields contiguous in-page slices covering a half-open [from, to)
// range of logical indices in strictly ascending order. After InitRange and
// before the first Next, the cursor is positioned before the range. Each
// Next either advances to the next contiguous run and returns true, or
// returns false once the range is exhausted. Reset re-arms the same range.
//
// A Cursor holds no lock and allocates nothing past construction; iterating
// it concurrently with writes to the same array is the caller's concern,
// same as Array itself.
type Cursor[T any] struct {
	a          *Array[T]
	from, to   int64
	page       []T
	base       int64
	offset     int64
	limit      int64
	nextPage   int64 // next page index to visit, single-page uses 0/1 sentinel
	exhausted  bool
	isSingle   bool
	singlePage []T
}

// NewCursor allocates a cursor bound to a, uninitialized until InitRange.
func (a *Array[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{a: a, isSingle: a.single != nil, singlePage: a.single}
}

// InitRange (re)positions c to iterate [from, to) of its bound array.
func InitRange[T any](c *Cursor[T], from, to int64) {
	c.from, c.to = from, to
	c.exhausted = from >= to
	c.page = nil
	c.base, c.offset, c.limit = 0, 0, 0
	if c.isSingle {
		c.nextPage = 0
		return
	}
	c.nextPage = pageIndex(from, c.a.pageShift)
}

// Reset re-arms the cursor over the same [from, to) range passed to the
// last InitRange call.
func (c *Cursor[T]) Reset() { InitRange(c, c.from, c.to) }

// Next advances to the next contiguous in-page run. Returns false when the
// range is exhausted.
func (c *Cursor[T]) Next() bool {
	if c.exhausted {
		return false
	}
	if c.isSingle {
		if c.nextPage > 0 {
			c.exhausted = true
			return false
		}
		c.page = c.singlePage
		c.base = 0
		c.offset = c.from
		c.limit = c.to
		c.nextPage = 1
		c.exhausted = true // single run covers the whole range
		return true
	}

	if c.nextPage*((c.a.pageMask)+1) >= c.to {
		c.exhausted = true
		return false
	}

	pageSize := c.a.pageMask + 1
	p := c.nextPage
	c.page = c.a.pages[p]
	c.base = p * pageSize

	start := c.from
	if start < c.base {
		start = c.base
	}
	end := c.to
	if pageEnd := c.base + int64(len(c.page)); end > pageEnd {
		end = pageEnd
	}
	c.offset = start - c.base
	c.limit = end - c.base
	c.nextPage = p + 1
	if c.base+int64(len(c.page)) >= c.to {
		c.exhausted = true
	}
	return true
}

// Base is the logical index corresponding to offset 0 in the current page.
func (c *Cursor[T]) Base() int64 { return c.base }

// Array returns the backing page slice for the current run; Array()[Offset():Limit()]
// is the contiguous run of logical indices [Base()+Offset(), Base()+Limit()).
func (c *Cursor[T]) Array() []T { return c.page }

// Offset is the first valid index into Array() for the current run.
func (c *Cursor[T]) Offset() int64 { return c.offset }

// Limit is one past the last valid index into Array() for the current run.
func (c *Cursor[T]) Limit() int64 { return c.limit }
