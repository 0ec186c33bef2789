package web

import (
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	// DefaultThemeName names the built-in manifest.
	DefaultThemeName = "profileform"
	// BaseVariant selects the manifest tokens without a variant overlay.
	BaseVariant = "light"
)

// DefaultManifest returns the built-in palette with its dark variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent":  "#2563eb",
			"surface": "#ffffff",
			"text":    "#111827",
			"muted":   "#6b7280",
			"border":  "#d1d5db",
			"danger":  "#dc2626",
			"success": "#16a34a",
		},
		Templates: map[string]string{
			pageTemplate:    "page.tmpl",
			summaryTemplate: "summary.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				"stylesheet": StylesheetName,
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"accent":  "#60a5fa",
					"surface": "#111827",
					"text":    "#f9fafb",
					"muted":   "#9ca3af",
					"border":  "#374151",
				},
			},
		},
	}
}

// ResolveTheme registers manifest with a go-theme registry and flattens the
// requested variant into a renderer config. An empty variant or BaseVariant
// uses the manifest tokens as they are.
func ResolveTheme(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("web: theme manifest is required")
	}
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("web: register theme %q: %w", manifest.Name, err)
	}

	variant = strings.ToLower(strings.TrimSpace(variant))
	if variant == BaseVariant {
		variant = ""
	}

	selection := &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}

	tokens := copyStringMap(manifest.Tokens)
	partials := copyStringMap(manifest.Templates)
	assets := copyStringMap(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if variant != "" {
		overlay, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("web: theme %q has no variant %q", manifest.Name, variant)
		}
		tokens = mergeStringMaps(tokens, overlay.Tokens)
		partials = mergeStringMaps(partials, overlay.Templates)
		assets = mergeStringMaps(assets, overlay.Assets.Files)
		if overlay.Assets.Prefix != "" {
			prefix = overlay.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := assets[key]
			if !ok {
				return ""
			}
			if prefix == "" {
				return file
			}
			return path.Join(prefix, file)
		},
	}, nil
}

func partialName(cfg *theme.RendererConfig, key string) string {
	if cfg != nil {
		if name := strings.TrimSpace(cfg.Partials[key]); name != "" {
			return name
		}
	}
	return key + ".tmpl"
}

func assetURL(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg != nil && cfg.AssetURL != nil {
		if url := cfg.AssetURL(key); url != "" {
			return url
		}
	}
	return fallback
}

// cssVarsStyle renders vars as sorted "name: value;" declarations.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	return b.String()
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	out := copyStringMap(base)
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
