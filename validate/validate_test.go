package validate

import (
	"testing"

	"github.com/ulgerang/nanosvg/svgdom"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		svg     string
		wantErr bool
	}{
		{
			name:    "empty nano document",
			svg:     `<svg><defs></defs></svg>`,
			wantErr: false,
		},
		{
			name:    "valid nano document",
			svg:     `<svg><defs><linearGradient><stop offset="0"/></linearGradient></defs><path d="M0,0 Z"/><path d="M1,1 Z"/></svg>`,
			wantErr: false,
		},
		{
			name:    "group not permitted",
			svg:     `<svg><defs></defs><g><path d="M0,0 Z"/></g></svg>`,
			wantErr: true,
		},
		{
			name:    "rect not permitted",
			svg:     `<svg><defs></defs><rect width="1" height="1"/></svg>`,
			wantErr: true,
		},
		{
			name:    "path before defs is index 0, rejected",
			svg:     `<svg><path d="M0,0 Z"/><defs></defs></svg>`,
			wantErr: true,
		},
		{
			name:    "gradient outside defs",
			svg:     `<svg><defs></defs><linearGradient></linearGradient></svg>`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := svgdom.ParseString(tt.svg)
			if err != nil {
				t.Fatalf("ParseString: %v", err)
			}
			err = Validate(root)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckEmptyOnValid(t *testing.T) {
	root, err := svgdom.ParseString(`<svg><defs></defs><path d="M0,0 Z"/></svg>`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if v := Check(root); len(v) != 0 {
		t.Errorf("Check() = %v, want empty", v)
	}
}
