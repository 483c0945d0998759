// Command imgpack prepares a picture for upload and prints it in the compressed
// transport form the content endpoints accept.
//
//	imgpack [-max-width 1600] [-max-height 1600] [-quality 85] [-keep-format] [-json] [file]
//
// With no file the image is read from stdin.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"sitecms/internal/adapters/codec"
	"sitecms/internal/adapters/imaging"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("imgpack failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, out io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("imgpack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	maxWidth := fs.Int("max-width", imaging.DefaultMaxWidth, "maximum width in pixels")
	maxHeight := fs.Int("max-height", imaging.DefaultMaxHeight, "maximum height in pixels")
	quality := fs.Int("quality", imaging.DefaultQuality, "JPEG quality (1-100)")
	keepFormat := fs.Bool("keep-format", false, "keep PNG and GIF sources in their own format")
	asJSON := fs.Bool("json", false, `print {"image": "..."} instead of the bare data URI`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if name := fs.Arg(0); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	res, err := imaging.Prepare(in, imaging.Options{
		MaxWidth:   *maxWidth,
		MaxHeight:  *maxHeight,
		Quality:    *quality,
		KeepFormat: *keepFormat,
	})
	if err != nil {
		return err
	}
	packed, err := codec.New().CompressWithMIME(base64.StdEncoding.EncodeToString(res.Data), res.MimeType)
	if err != nil {
		return err
	}
	logger.Info("image packed",
		"width", res.Width, "height", res.Height, "resized", res.Resized,
		"encoded_bytes", len(res.Data), "packed_chars", len(packed))

	if *asJSON {
		return json.NewEncoder(out).Encode(map[string]string{"image": packed})
	}
	_, err = fmt.Fprintln(out, packed)
	return err
}
