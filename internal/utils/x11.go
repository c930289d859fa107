package utils

import (
	"errors"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var errNoDisplay = errors.New("no X11 display")

var (
	xConn *xgb.Conn
	xRoot xproto.Window
)

func connectX11() error {
	if xConn != nil {
		return nil
	}
	if os.Getenv("DISPLAY") == "" {
		return errNoDisplay
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}

	setup := xproto.Setup(conn)
	xConn = conn
	xRoot = setup.DefaultScreen(conn).Root
	return nil
}

// GlobalPointer returns the pointer position on the X root window, which
// keeps reporting while the clock window is unfocused.
func GlobalPointer() (int, int, error) {
	if err := connectX11(); err != nil {
		return 0, 0, err
	}

	reply, err := xproto.QueryPointer(xConn, xRoot).Reply()
	if err != nil {
		return 0, 0, err
	}

	return int(reply.RootX), int(reply.RootY), nil
}

// ScreenSize reports the size of the default X screen.
func ScreenSize() (int, int, error) {
	if err := connectX11(); err != nil {
		return 0, 0, err
	}
	screen := xproto.Setup(xConn).DefaultScreen(xConn)
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}

func CloseX11() {
	if xConn != nil {
		xConn.Close()
		xConn = nil
	}
}
