package fixedstr

// Search and comparison on a String behave exactly like the View methods of
// the same name applied to its content.

func (s *String) Equal(str string) bool     { return s.View().Equal(str) }
func (s *String) Compare(str string) int    { return s.View().Compare(str) }
func (s *String) HasPrefix(str string) bool { return s.View().HasPrefix(str) }
func (s *String) HasSuffix(str string) bool { return s.View().HasSuffix(str) }
func (s *String) Contains(str string) bool  { return s.View().Contains(str) }

func (s *String) EqualView(o View) bool     { return s.View().EqualView(o) }
func (s *String) CompareView(o View) int    { return s.View().CompareView(o) }
func (s *String) HasPrefixView(o View) bool { return s.View().HasPrefixView(o) }
func (s *String) HasSuffixView(o View) bool { return s.View().HasSuffixView(o) }
func (s *String) ContainsView(o View) bool  { return s.View().ContainsView(o) }

func (s *String) Index(sub string, from int) int      { return s.View().Index(sub, from) }
func (s *String) LastIndex(sub string, pos int) int   { return s.View().LastIndex(sub, pos) }
func (s *String) IndexByte(c byte, from int) int      { return s.View().IndexByte(c, from) }
func (s *String) LastIndexByte(c byte) int            { return s.View().LastIndexByte(c) }
func (s *String) IndexAny(chars string, from int) int { return s.View().IndexAny(chars, from) }
func (s *String) LastIndexAny(chars string) int       { return s.View().LastIndexAny(chars) }

func (s *String) IndexNotAny(chars string, from int) int {
	return s.View().IndexNotAny(chars, from)
}

func (s *String) LastIndexNotAny(chars string) int {
	return s.View().LastIndexNotAny(chars)
}
