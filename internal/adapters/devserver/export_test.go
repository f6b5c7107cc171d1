package devserver

// ClientCount returns the number of connected browsers.
func (s *Server) ClientCount() int {
	return s.hub.count()
}

var InjectClient = injectClient
