package gffutils

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"
)

// source is a rewindable line source over a plain or gzip-compressed
// file. Rewinding a gzip source seeks the underlying file to zero and
// restarts the decompressor.
type source struct {
	path string
	f    *os.File
	gz   *gzip.Reader
	br   *bufio.Reader
}

func openSource(path string) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := &source{path: path, f: f}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		s.gz = gz
		s.br = bufio.NewReader(gz)
	} else {
		s.br = bufio.NewReader(f)
	}
	return s, nil
}

func (s *source) reset() error {
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if s.gz != nil {
		if err := s.gz.Reset(s.f); err != nil {
			return err
		}
		s.br.Reset(s.gz)
	} else {
		s.br.Reset(s.f)
	}
	return nil
}

func (s *source) readLine() (string, error) {
	return s.br.ReadString('\n')
}

func (s *source) close() error {
	if s.gz != nil {
		s.gz.Close()
	}
	return s.f.Close()
}

// Reader produces features from a GFF or GTF file one record at a time.
// Comment lines and lines without nine tab-separated fields are skipped;
// a '>' line or a ##FASTA marker ends iteration. The file's dialect is
// fixed from the first valid record and applied to every feature read.
type Reader struct {
	src      *source
	ignore   map[string]bool
	only     map[string]bool
	filetype Filetype
	done     bool
}

// Open opens a GFF or GTF file, transparently decompressing names ending
// in .gz. The ignore set drops the listed feature types; the only set
// keeps nothing but the listed types. Setting both fails with
// ErrInvalidConfiguration. The first valid record is read eagerly to fix
// the file's dialect; a file without one fails with ErrEmptyFile.
func Open(path string, ignore, only []string) (*Reader, error) {
	if len(ignore) > 0 && len(only) > 0 {
		return nil, ErrInvalidConfiguration
	}
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	r := &Reader{src: src, ignore: toSet(ignore), only: toSet(only)}
	fields, err := r.nextFields()
	if err != nil {
		src.close()
		if err == io.EOF {
			return nil, ErrEmptyFile
		}
		return nil, err
	}
	r.filetype = detectFiletype(fields[8])
	if err := r.Reset(); err != nil {
		src.close()
		return nil, err
	}
	return r, nil
}

func toSet(types []string) map[string]bool {
	if len(types) == 0 {
		return nil
	}
	m := make(map[string]bool)
	for _, t := range types {
		m[t] = true
	}
	return m
}

// nextFields returns the columns of the next structurally valid line:
// not a comment, not past a sequence section, exactly nine fields.
func (r *Reader) nextFields() ([]string, error) {
	if r.done {
		return nil, io.EOF
	}
	for {
		line, err := r.src.readLine()
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) == 0 && err == io.EOF {
			r.done = true
			return nil, io.EOF
		}
		if err == io.EOF {
			// Final line without a trailing newline.
			r.done = true
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(trimmed, ">") || trimmed == "##FASTA" {
			r.done = true
			return nil, io.EOF
		}
		if !strings.HasPrefix(trimmed, "#") {
			fields := strings.Split(trimmed, "\t")
			if len(fields) == 9 {
				return fields, nil
			}
		}
		if r.done {
			return nil, io.EOF
		}
	}
}

// Read returns the next feature, or io.EOF at end of input. Filtered and
// invalid lines are skipped silently; a non-integer coordinate surfaces
// as a MalformedRecordError.
func (r *Reader) Read() (*Feature, error) {
	for {
		fields, err := r.nextFields()
		if err != nil {
			return nil, err
		}
		featuretype := fields[2]
		if len(r.ignore) > 0 && r.ignore[featuretype] {
			continue
		}
		if len(r.only) > 0 && !r.only[featuretype] {
			continue
		}
		start, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, &MalformedRecordError{Line: strings.Join(fields, "\t"), Err: err}
		}
		stop, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, &MalformedRecordError{Line: strings.Join(fields, "\t"), Err: err}
		}
		f := NewFeature(fields[0], fields[1], featuretype, start, stop, fields[5], fields[6], fields[7], fields[8])
		f.filetype = r.filetype
		return f, nil
	}
}

// ReadAll reads every remaining feature. End of input is not reported as
// an error.
func (r *Reader) ReadAll() ([]*Feature, error) {
	var features []*Feature
	for {
		f, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return features, nil
			}
			return nil, err
		}
		features = append(features, f)
	}
}

// Count drains the reader to count the remaining records, then resets it
// to the start of the file.
func (r *Reader) Count() (int, error) {
	n := 0
	for {
		_, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		n++
	}
	if err := r.Reset(); err != nil {
		return 0, err
	}
	return n, nil
}

// Reset rewinds to the start of the file; the next Read re-applies all
// filters from scratch.
func (r *Reader) Reset() error {
	if err := r.src.reset(); err != nil {
		return err
	}
	r.done = false
	return nil
}

// Filetype returns the dialect inferred from the first valid record.
func (r *Reader) Filetype() Filetype { return r.filetype }

// Close releases the underlying file handle.
func (r *Reader) Close() error { return r.src.close() }
