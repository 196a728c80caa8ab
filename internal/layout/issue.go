package layout

import "fmt"

// Issue is a single layout-order violation. Line is the line of the later,
// out-of-place declaration.
type Issue struct {
	Line int
	Msg  string
}

func (i Issue) String() string {
	return fmt.Sprintf("Issue(line=%d, msg=%s)", i.Line, i.Msg)
}
