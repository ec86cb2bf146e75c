package textconv

import "unsafe"

// WCharSize is the size of WChar in bytes. It equals
// platform.WideCharSize(platform.Current()).
const WCharSize = int(unsafe.Sizeof(WChar(0)))
