package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// ButtonMaskPrimary is the QueryPointer mask bit for a held left button.
const ButtonMaskPrimary = xproto.KeyButMaskButton1

// PointerPosition returns the pointer position on the root window and the
// current key/button mask.
func (c *Connection) PointerPosition() (x, y int, mask uint16, err error) {
	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("query pointer: %w", err)
	}
	return int(pointer.RootX), int(pointer.RootY), pointer.Mask, nil
}
