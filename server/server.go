package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/kawarimidoll/hjkls/logging"
	"github.com/kawarimidoll/hjkls/parser"
	"github.com/kawarimidoll/hjkls/transport"
	"github.com/kawarimidoll/hjkls/util"
)

type ServerState int

const (
	Created = iota
	Initializing
	Running
	Shutdown
	Exit
	ExitError
)

// Options carries the CLI-level knobs into the server.
type Options struct {
	Mode       EditorMode
	VimRuntime util.Path
}

// Main Server Struct
type Server struct {
	Capabilities transport.ServerCapabilities

	// Open documents and the cross-file symbol database are separate
	// stores; both are refreshed on document change and save.
	Documents Documents
	Store     Store
	Workspace Workspace

	Status ServerState
	mu     sync.Mutex

	Transport transport.Transport

	// Editor mode for filtering builtin tables
	mode EditorMode
	// Vim runtime path override for autoload resolution
	vimruntime util.Path

	config   Config
	configMu sync.Mutex

	diagChan chan transport.PublishDiagnosticsParams
}

// Init prepares the server for Run.
func (s *Server) Init(transp transport.TransportMethod, opts Options) {
	s.Status = Created
	s.Transport.Init(transport.Server, transp)
	parser.Init()

	s.mode = opts.Mode
	s.vimruntime = opts.VimRuntime
	s.config = DefaultConfig()
	s.Documents.Init()
	s.Store.Init()
	s.diagChan = make(chan transport.PublishDiagnosticsParams, 16)
}

// Config returns a copy of the active configuration.
func (s *Server) Config() Config {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	return s.config
}

func (s *Server) setConfig(cfg Config) {
	s.configMu.Lock()
	s.config = cfg
	s.configMu.Unlock()
}

// Run drives the main loop until exit or stream close.
func (s *Server) Run(ctx context.Context) error {
	var returnError error
	end := make(chan error, 1)
	go s.Loop(ctx, end)
	select {
	case err := <-end:
		if err != nil {
			logging.Logger.Error("ending because of error", "error", err)
			returnError = err
		} else {
			logging.Logger.Info("LSP successfully exited")
		}
	case <-ctx.Done():
		logging.Logger.Info("canceling main loop")
	}

	parser.Close()
	return returnError
}

// The central LSP server loop
func (s *Server) Loop(ctx context.Context, end chan<- error) {
	var err error
	var msg []byte
	var method string

	for s.Status != Exit && s.Status != ExitError && !s.Transport.Closed && err == nil {
		select {
		case <-ctx.Done():
			end <- nil
			return
		default:
		}

		msg, err = s.Transport.Read()
		if err != nil {
			break
		}

		method, err = transport.GetMethod(msg)
		if len(method) == 0 {
			break
		}
		if err != nil {
			break
		}

		logging.Logger.Info("got method", "method", method)

		if err = s.ValidateMethod(method); err != nil {
			break
		}

		// Handlers run to completion on this goroutine. LSP guarantees
		// sequential processing per document and we do not reorder.
		s.HandleMethod(ctx, method, msg)
	}
	if s.Status == ExitError {
		end <- errors.New("exiting ungracefully")
		return
	} else if s.Status == Exit {
		end <- nil
		return
	}
	if err == nil && s.Transport.Closed {
		err = errors.New("stream closed: got EOF")
	} else {
		s.Transport.Close()
	}
	end <- err
}

// ValidateMethod checks that method is valid in the current server state.
func (s *Server) ValidateMethod(method string) error {
	switch s.Status {
	case Created:
		if method != "initialize" {
			return errors.New("server not started, but received " + method)
		}
	case Shutdown:
		if method != "exit" {
			return errors.New("can only exit, received " + method)
		}
	}
	return nil
}

// HandleMethod dispatches one message to its handler and writes the reply.
func (s *Server) HandleMethod(ctx context.Context, method string, message []byte) {
	_, content, _ := bytes.Cut(message, []byte{'\r', '\n', '\r', '\n'})

	if handler, ok := requestHandlers[method]; ok {
		var m transport.RequestMessage
		json.Unmarshal(content, &m)
		result, rpcErr := handler(ctx, s, m.Params)

		resp := transport.ResponseMessage{
			Message: transport.Message{Jsonrpc: "2.0"},
			ID:      m.ID,
			Result:  result,
			Error:   rpcErr,
		}
		msg, err := json.Marshal(resp)
		if err != nil {
			logging.Logger.Error("response marshal failed", "method", method, "error", err)
			return
		}
		if err := s.Transport.Write(msg); err != nil {
			logging.Logger.Error("response write failed", "method", method, "error", err)
		}
		return
	}

	if handler, ok := notificationHandlers[method]; ok {
		var m transport.NotificationMessage
		json.Unmarshal(content, &m)
		if err := handler(ctx, s, m.Params); err != nil {
			logging.Logger.Error("notification handler failed", "method", method, "error", err)
		}
	}
}

type requestHandler func(context.Context, *Server, json.RawMessage) (json.RawMessage, *transport.ResponseError)
type notificationHandler func(context.Context, *Server, json.RawMessage) error

// Map from method to method handler for request methods
var requestHandlers = map[string]requestHandler{
	"initialize":                      Initialize,
	"shutdown":                        ShutdownEnd,
	"textDocument/completion":         Completion,
	"textDocument/signatureHelp":      SignatureHelp,
	"textDocument/definition":         Definition,
	"textDocument/hover":              Hover,
	"textDocument/references":         References,
	"textDocument/documentHighlight":  DocumentHighlight,
	"textDocument/foldingRange":       FoldingRanges,
	"textDocument/documentSymbol":     DocumentSymbols,
	"workspace/symbol":                WorkspaceSymbols,
	"textDocument/prepareRename":      PrepareRename,
	"textDocument/rename":             Rename,
	"textDocument/selectionRange":     SelectionRanges,
	"textDocument/codeAction":         CodeActions,
	"textDocument/formatting":         Formatting,
}

// Map from method to method handler for notification methods
var notificationHandlers = map[string]notificationHandler{
	"initialized":            Initialized,
	"textDocument/didOpen":   TextDocumentOpen,
	"textDocument/didChange": TextDocumentChange,
	"textDocument/didClose":  TextDocumentClose,
	"textDocument/didSave":   TextDocumentSave,
	"exit":                   ExitEnd,
}

// PublishDiagnostics drains the diagnostic channel onto the wire. Runs on
// its own goroutine; channel order preserves per-document publish order.
func (s *Server) PublishDiagnostics(ctx context.Context) {
	for {
		select {
		case diag := <-s.diagChan:
			content, err := json.Marshal(diag)
			if err != nil {
				continue
			}
			s.Transport.WriteNotif("textDocument/publishDiagnostics", content)
		case <-ctx.Done():
			return
		}
	}
}

func marshalResult(v any) (json.RawMessage, *transport.ResponseError) {
	result, err := json.Marshal(v)
	if err != nil {
		return nil, &transport.ResponseError{Code: transport.InternalError, Message: err.Error()}
	}
	return result, nil
}

var null = json.RawMessage("null")
