//go:build windows

package api

import (
	"fmt"
	"net/http"
)

func listenIPC(mux *http.ServeMux) error {
	return fmt.Errorf("unix socket mode is not supported on windows; set SERVER_MODE=tcp")
}
