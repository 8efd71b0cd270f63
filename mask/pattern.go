// Package mask implements the mask selector (C5) and demasker (C6): eight
// deterministic XOR patterns over palette indices, a three-rule penalty
// score used to pick among them at encode time, and the column-major
// demasking walk used at decode time (§4.5, §4.6).
package mask

// NumPatterns is the number of closed-form mask patterns (id 0..7).
const NumPatterns = 8

// Pattern computes the XOR delta for mask id at module coordinate (x,y)
// given the palette size colorNumber (C), per the closed-form table in
// §4.5. It depends only on its arguments, so applying it twice at the same
// (x,y,id,C) restores the original palette index.
func Pattern(id, x, y, colorNumber int) int {
	c := colorNumber
	switch id {
	case 0:
		return mod(x+y, c)
	case 1:
		return mod(x, c)
	case 2:
		return mod(y, c)
	case 3:
		return mod(x/2+y/3, c)
	case 4:
		return mod(x/3+y/2, c)
	case 5:
		return mod((x+y)/2+(x+y)/3, c)
	case 6:
		return mod(mod(x*x*y, 7)+mod(2*x*x+2*y, 19), c)
	case 7:
		return mod(mod(x*y*y, 5)+mod(2*x+y*y, 13), c)
	default:
		panic("mask: invalid pattern id")
	}
}

// mod is floor-division modulo; x, y are always non-negative module
// coordinates in practice, but this guards against negative intermediate
// products in patterns 6 and 7.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
