package utils

import (
	"io"
	"sync"
)

// FlushingWriter forwards writes to a wrapped writer and flushes it immediately when the writer supports flushing.
type FlushingWriter struct {
	destination io.Writer
	writeGuard  sync.Mutex
}

// NewFlushingWriter wraps the provided writer so buffered output becomes visible after every write.
// A writer that already flushes is returned unchanged.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return nil
	}
	if _, alreadyFlushing := writer.(*FlushingWriter); alreadyFlushing {
		return writer
	}

	return &FlushingWriter{destination: writer}
}

// Write delegates to the wrapped writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	if flushingWriter == nil || flushingWriter.destination == nil {
		return 0, nil
	}

	flushingWriter.writeGuard.Lock()
	defer flushingWriter.writeGuard.Unlock()

	bytesWritten, writeError := flushingWriter.destination.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	return bytesWritten, flushWhenSupported(flushingWriter.destination)
}

func flushWhenSupported(writer io.Writer) error {
	if flushableWriter, implementsFlush := writer.(interface{ Flush() error }); implementsFlush {
		return flushableWriter.Flush()
	}

	return nil
}
