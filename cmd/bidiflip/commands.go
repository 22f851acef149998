package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"bidiflip/archive"
	"bidiflip/bidi"
	"bidiflip/state"
)

// applyDirectionFlags overrides configured direction and rem conversion
// with command line values. --dir wins over --lang.
func applyDirectionFlags(env *state.LocalEnv, cmd *cli.Command) error {
	if lang := cmd.String("lang"); len(lang) > 0 {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("bad language '%s': %w", lang, err)
		}
		env.Direction = bidi.DirectionForLanguage(tag)
	}
	if dir := cmd.String("dir"); len(dir) > 0 {
		d, err := bidi.ParseDirection(dir)
		if err != nil {
			return fmt.Errorf("bad direction '%s': %w", dir, err)
		}
		env.Direction = d
	}
	if cmd.IsSet("rem") {
		env.UseRem = cmd.Bool("rem")
	}
	return nil
}

func runTransform(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() < 2 {
		return errors.New("property and value are required")
	}
	if err := applyDirectionFlags(env, cmd); err != nil {
		return err
	}

	args := cmd.Args().Slice()
	return transformDeclaration(env.DirectionContext(ctx), env, os.Stdout, args[0], strings.Join(args[1:], " "), cmd.String("breakpoint"))
}

// transformDeclaration writes mirrored declaration followed by a new line.
func transformDeclaration(ctx context.Context, env *state.LocalEnv, out io.Writer, property, value, breakpoint string) error {
	var (
		result string
		err    error
	)
	if len(breakpoint) > 0 {
		result, err = env.Engine.TransformAt(property, value, bidi.DirectionFromContext(ctx), env.UseRem, breakpoint)
	} else {
		result, err = env.Engine.TransformContext(ctx, property, value, env.UseRem)
	}
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("transform.txt", []byte(property+": "+value+"\n=> "+result+"\n"))
		if n, err := bidi.Parse(value); err == nil {
			env.Rpt.StoreData("value-tree.txt", []byte(bidi.Dump(n)))
		}
	}

	if _, err := fmt.Fprintln(out, result); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}

func runFlip(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no source stylesheet has been specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	if err := applyDirectionFlags(env, cmd); err != nil {
		return err
	}
	return flipStylesheet(env.DirectionContext(ctx), env, cmd.Args().Get(0), cmd.Args().Get(1), cmd.Bool("overwrite"))
}

// flipStylesheet mirrors src into dst. Empty dst means STDOUT, "-" src means
// STDIN. Directories and zip archives are processed file by file into dst
// directory. Destination is not touched when mirroring fails.
func flipStylesheet(ctx context.Context, env *state.LocalEnv, src, dst string, overwrite bool) error {
	if src != "-" && archive.IsContainer(src) {
		return flipTree(ctx, env, src, dst, overwrite)
	}

	var (
		data []byte
		err  error
	)
	if src == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(src)
		if err == nil {
			if er := env.Rpt.StoreCopy("source.css", src); er != nil {
				env.Log.Warn("Unable to store source in the report", zap.Error(er))
			}
		}
	}
	if err != nil {
		return fmt.Errorf("unable to read source stylesheet: %w", err)
	}

	env.Log.Info("Flipping stylesheet",
		zap.String("source", src),
		zap.Stringer("direction", bidi.DirectionFromContext(ctx)),
		zap.Bool("rem", env.UseRem))

	result, err := env.Rewriter.Rewrite(ctx, data, env.UseRem)
	if err != nil {
		return fmt.Errorf("unable to flip stylesheet '%s': %w", src, err)
	}
	env.Rpt.StoreData("result.css", result)

	if len(dst) == 0 {
		if _, err := os.Stdout.Write(result); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
		return nil
	}
	if err := writeResult(dst, result, overwrite); err != nil {
		return err
	}
	env.Log.Info("Stylesheet flipped", zap.String("destination", dst))
	return nil
}

// flipTree mirrors every stylesheet found in src keeping relative paths
// under dst. Failing stylesheets are skipped and reported together.
func flipTree(ctx context.Context, env *state.LocalEnv, src, dst string, overwrite bool) error {
	if len(dst) == 0 {
		return fmt.Errorf("destination directory is required for '%s'", src)
	}

	env.Log.Info("Flipping stylesheets",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Stringer("direction", bidi.DirectionFromContext(ctx)),
		zap.Bool("rem", env.UseRem))

	var (
		errs    error
		flipped int
	)
	err := archive.Walk(src, ".css", func(name string, open archive.OpenFunc) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rc, err := open()
		if err != nil {
			return fmt.Errorf("unable to open '%s': %w", name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("unable to read '%s': %w", name, err)
		}

		result, err := env.Rewriter.Rewrite(ctx, data, env.UseRem)
		if err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("unable to flip stylesheet '%s': %w", name, err))
			return nil
		}
		env.Rpt.StoreData("result/"+name, result)

		if err := writeResult(filepath.Join(dst, filepath.FromSlash(name)), result, overwrite); err != nil {
			return err
		}
		flipped++
		env.Log.Debug("Stylesheet flipped", zap.String("name", name))
		return nil
	})
	if err != nil {
		return multierr.Append(fmt.Errorf("unable to process '%s': %w", src, err), errs)
	}

	env.Log.Info("Stylesheets flipped", zap.Int("count", flipped), zap.Int("failed", len(multierr.Errors(errs))))
	return errs
}

func writeResult(dst string, data []byte, overwrite bool) error {
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return fmt.Errorf("destination '%s' already exists, use --overwrite", dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write destination '%s': %w", dst, err)
	}
	return nil
}
