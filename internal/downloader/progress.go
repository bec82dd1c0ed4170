package downloader

import "io"

type progressWriter struct {
	w      io.Writer
	report func(delta int64)
}

func (p progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if n > 0 && p.report != nil {
		p.report(int64(n))
	}
	return n, err
}

func copyWithProgress(dst io.Writer, src io.Reader, report func(delta int64)) (int64, error) {
	return io.Copy(progressWriter{w: dst, report: report}, src)
}
