package statblock

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaSource string

var (
	schemaOnce sync.Once
	schemaCtx  *cue.Context
	schemaVal  cue.Value
	schemaErr  error
)

// schema compiles the embedded record schema once per process.
func schema() (*cue.Context, cue.Value, error) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		v := schemaCtx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if v.Err() != nil {
			schemaErr = fmt.Errorf("compiling statblock schema: %w", v.Err())
			return
		}
		schemaVal = v.LookupPath(cue.ParsePath("#StatBlock"))
		if schemaVal.Err() != nil {
			schemaErr = fmt.Errorf("resolving #StatBlock: %w", schemaVal.Err())
		}
	})
	return schemaCtx, schemaVal, schemaErr
}

// Parse validates the JSON body of a statblock fence against the record
// schema and decodes it. Malformed JSON, a missing required field, an
// unknown field, or a wrong type all return an error; a partial record is
// never produced.
func Parse(src []byte) (*StatBlock, error) {
	ctx, sch, err := schema()
	if err != nil {
		return nil, err
	}

	expr, err := cuejson.Extract("statblock", src)
	if err != nil {
		return nil, fmt.Errorf("parsing statblock JSON: %w", err)
	}

	val := sch.Unify(ctx.BuildExpr(expr))
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid statblock record: %w", err)
	}

	var b StatBlock
	if err := val.Decode(&b); err != nil {
		return nil, fmt.Errorf("decoding statblock record: %w", err)
	}
	return &b, nil
}
