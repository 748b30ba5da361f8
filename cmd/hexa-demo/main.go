package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pwnedgod/hexa"
	"github.com/pwnedgod/hexa/codec"
	"github.com/pwnedgod/hexa/config"
	"github.com/pwnedgod/hexa/logger"
	"github.com/pwnedgod/hexa/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("hexa-demo", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := fs.String("config", "", "YAML or JSON config file (HEXA_* environment variables override it)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	l, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if err := demo(context.Background(), cfg, out, l); err != nil {
		l.Error("demo failed:", err)
		return 1
	}
	return 0
}

func demo(ctx context.Context, cfg config.Config, out io.Writer, l logger.Logger) error {
	c, err := newCodec(cfg.Codec)
	if err != nil {
		return err
	}

	a, closeAdapter, err := newAdapter(cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeAdapter(); err != nil {
			l.Error("close storage:", err)
		}
	}()

	v := demoValues()
	key := v.foo

	text := v.text()
	textData, err := c.Marshal(&text)
	if err != nil {
		return errors.Wrap(err, "marshal text record")
	}
	printRecord(out, c, "astext", textData)

	texts := store.New[textThing](a, c, l, "demo-text").SetTTL(cfg.TTL)
	if err := texts.Put(ctx, key, text); err != nil {
		return errors.Wrap(err, "store text record")
	}

	stored, err := texts.Get(ctx, key)
	if err != nil {
		return errors.Wrap(err, "read text record")
	}
	if err := sameEncoding(c, textData, &stored); err != nil {
		return err
	}
	l.Info("text record round trip ok", key)

	nums := store.New[numThing](a, c, l, "demo-num").SetTTL(cfg.TTL)
	num, err := nums.Load(ctx, key, func(context.Context) (store.LoadResult[numThing], error) {
		return store.LoadResult[numThing]{Cache: true, Value: v.num()}, nil
	})
	if err != nil {
		return errors.Wrap(err, "load numeric record")
	}

	numData, err := c.Marshal(&num)
	if err != nil {
		return errors.Wrap(err, "marshal numeric record")
	}
	printRecord(out, c, "asnum", numData)

	stored2, err := nums.Get(ctx, key)
	if err != nil {
		return errors.Wrap(err, "read numeric record")
	}
	if err := sameEncoding(c, numData, &stored2); err != nil {
		return err
	}
	l.Info("numeric record round trip ok", key)

	return nil
}

func printRecord(out io.Writer, c codec.Codec, label string, data []byte) {
	if c.Name() == config.CodecJSON {
		fmt.Fprintf(out, "%s: %s\n", label, data)
		return
	}

	// Binary codecs are shown as hex.
	fmt.Fprintf(out, "%s (%s): %s\n", label, c.Name(), hexa.FromBytes(data))
}

func sameEncoding(c codec.Codec, want []byte, v any) error {
	got, err := c.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal stored record")
	}

	if !bytes.Equal(want, got) {
		return errors.Newf("stored record differs: want %x, got %x", want, got)
	}
	return nil
}
