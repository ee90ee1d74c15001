// Package pipeline drives one storefront page through the
// translate-then-generate sequence: render prompt, generate, sanitize,
// parse or repair, substitute into the target template.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront_copywriter/catalog"
	"storefront_copywriter/document"
	"storefront_copywriter/generator"
)

const translateTemperature = 0.3

// Runner processes pages sequentially, one content unit at a time.
type Runner struct {
	client *generator.Client
	log    *zap.SugaredLogger
}

func NewRunner(client *generator.Client, log *zap.SugaredLogger) (*Runner, error) {
	if client == nil {
		return nil, errors.New("generation client is required")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{client: client, log: log}, nil
}

// Run processes every translation and generation unit of the page, in
// catalog order, mutating the template at path. It stops on the first
// unrecovered error; substitutions already made stay in the file.
func (r *Runner) Run(ctx context.Context, page catalog.Page, path string, req catalog.Request) error {
	r.log.Infow("processing page",
		"page", page.Name, "brand", req.Brand, "product", req.ProductTitle, "language", req.Language)

	if err := r.runTranslations(ctx, page, path, req); err != nil {
		return err
	}
	if err := r.runGenerated(ctx, page, path, req); err != nil {
		return err
	}

	r.log.Infow("page complete", "page", page.Name)
	return nil
}

func (r *Runner) runTranslations(ctx context.Context, page catalog.Page, path string, req catalog.Request) error {
	for _, tr := range page.Translations {
		text, err := r.translate(ctx, tr.Source, req.Language)
		if err != nil {
			// Keep the English source rather than abort: a missing
			// translation degrades the page, a hole in it breaks it.
			r.log.Warnw("translation failed, keeping source text",
				"source", tr.Source, "error", err)
			text = tr.Source
		}
		for _, token := range tr.Tokens {
			if err := r.substitute(path, token, text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) translate(ctx context.Context, text, language string) (string, error) {
	prompt := fmt.Sprintf("Translate to %s. Return only the translation, no explanations: %s", language, text)
	raw, err := r.client.Generate(ctx, prompt, 0, translateTemperature)
	if err != nil {
		return "", err
	}
	return generator.StripWrappingQuotes(generator.Sanitize(raw)), nil
}

func (r *Runner) runGenerated(ctx context.Context, page catalog.Page, path string, req catalog.Request) error {
	for _, unit := range page.Units {
		if err := r.processUnit(ctx, unit, path, req); err != nil {
			return fmt.Errorf("unit %s: %w", unit.Key, err)
		}
		r.log.Infow("unit complete", "unit", unit.Key)
	}
	return nil
}

func (r *Runner) processUnit(ctx context.Context, unit catalog.Unit, path string, req catalog.Request) error {
	prompt := unit.Prompt(req)
	raw, err := r.client.GenerateWithShape(ctx, prompt, unit.Reference, unit.MaxTokens)
	if err != nil {
		return err
	}
	text := generator.Sanitize(raw)

	if unit.Shape != catalog.JSONObject {
		if unit.Shape == catalog.HTMLFragment {
			text = generator.RenderEmphasis(text)
		}
		return r.substitute(path, unit.Token, text)
	}

	fields, err := r.parseOrRecover(ctx, text, unit)
	if err != nil {
		return err
	}
	for _, f := range unit.Fields {
		if err := r.substitute(path, f.Token, fields[f.Name]); err != nil {
			return err
		}
	}
	return nil
}

// parseOrRecover decodes the unit's JSON payload, asking the model to
// repair it up to twice; the second attempt runs under a distinct
// context label so the repair prompt differs from the first.
func (r *Runner) parseOrRecover(ctx context.Context, text string, unit catalog.Unit) (map[string]string, error) {
	names := unit.FieldNames()

	fields, err := decodeFields(text, names)
	if err == nil {
		return fields, nil
	}
	r.log.Warnw("json parse failed, attempting repair", "unit", unit.Key, "error", err)

	fixed := r.client.RecoverJSON(ctx, text, unit.Key, names)
	if fields, err = decodeFields(fixed, names); err == nil {
		return fields, nil
	}
	r.log.Warnw("first repair attempt failed", "unit", unit.Key, "error", err)

	fixed = r.client.RecoverJSON(ctx, text, unit.Key+"_retry", names)
	if fields, err = decodeFields(fixed, names); err == nil {
		return fields, nil
	}
	r.log.Errorw("second repair attempt failed", "unit", unit.Key, "error", err)

	return nil, fmt.Errorf("%w: %s", ErrRecoveryExhausted, unit.Key)
}

func (r *Runner) substitute(path, token, content string) error {
	err := document.Substitute(path, token, content)
	if errors.Is(err, document.ErrMissingPlaceholder) {
		r.log.Warnw("placeholder not found in template", "token", token, "path", path)
		return nil
	}
	return err
}

// decodeFields parses a JSON object into a flat field map. Nested
// objects flatten one level to dotted names, matching how the catalog
// declares grouped units like testimonials and badges. Every declared
// name must be present or the decode fails.
func decodeFields(text string, names []string) (map[string]string, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}

	flat := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			flat[key] = v
		case map[string]any:
			for sub, inner := range v {
				s, ok := inner.(string)
				if !ok {
					return nil, fmt.Errorf("field %s.%s: expected string", key, sub)
				}
				flat[key+"."+sub] = s
			}
		default:
			return nil, fmt.Errorf("field %s: expected string or object", key)
		}
	}

	for _, name := range names {
		if _, ok := flat[name]; !ok {
			return nil, fmt.Errorf("missing field %s", name)
		}
	}
	return flat, nil
}
