package internal

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// LocalOutputEnvVar names the file assertion results are written to.
const LocalOutputEnvVar = "TRUTH_LOCAL_OUTPUT"

const errorLogLinePrefix = "[* truth-go *]"

type libHandler interface {
	output(message string)
}

var (
	handler      libHandler
	handlerMutex sync.Mutex
)

// JSONData writes v as a single JSON line to the local output, if one is configured.
func JSONData(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	handler.output(string(data))
	return nil
}

// Enabled reports whether JSONData writes anywhere.
func Enabled() bool {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	h, ok := handler.(*localHandler)
	return ok && h.outputFile != nil
}

// Reopen closes the current output file, if any, and selects the output
// again from LocalOutputEnvVar.
func Reopen() {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	if h, ok := handler.(*localHandler); ok && h.outputFile != nil {
		h.outputFile.Close()
	}
	handler = openLocalHandler()
}

type localHandler struct {
	outputFile *os.File // can be nil
}

func (h *localHandler) output(message string) {
	if h.outputFile != nil {
		h.outputFile.WriteString(message + "\n")
	}
}

func init() {
	handler = openLocalHandler()
}

// If `LocalOutputEnvVar` is set to a non-empty path, attempt to open that path and truncate the file
// to serve as the log file of the local handler.
// Otherwise, we don't have a log file, and output is a no-op in the local handler.
func openLocalHandler() *localHandler {
	path, isSet := os.LookupEnv(LocalOutputEnvVar)
	if !isSet || len(path) == 0 {
		return &localHandler{nil}
	}

	// Open the file R/W (create if needed and possible)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		log.Printf("%s Failed to open path %s: %v", errorLogLinePrefix, path, err)
		file = nil
	} else if err = file.Truncate(0); err != nil {
		log.Printf("%s Failed to truncate file at %s: %v", errorLogLinePrefix, path, err)
		file = nil
	}

	return &localHandler{file}
}
