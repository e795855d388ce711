package charts

import (
	"strings"
	"testing"
)

func TestDefaultSpecs_CatalogShape(t *testing.T) {
	specs := DefaultSpecs()

	if len(specs) != 12 {
		t.Fatalf("expected 12 charts in the default catalog, got %d", len(specs))
	}

	seenNames := make(map[string]bool)
	seenFiles := make(map[string]bool)
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			t.Errorf("catalog spec %s failed validation: %v", s.Name, err)
		}
		if seenNames[s.Name] {
			t.Errorf("duplicate chart name: %s", s.Name)
		}
		if seenFiles[s.Filename] {
			t.Errorf("duplicate output filename: %s", s.Filename)
		}
		seenNames[s.Name] = true
		seenFiles[s.Filename] = true

		if !strings.HasSuffix(s.Filename, ".jpg") {
			t.Errorf("chart %s: expected .jpg output, got %s", s.Name, s.Filename)
		}
	}
}

func TestDefaultSpecs_RenderOrder(t *testing.T) {
	specs := DefaultSpecs()

	wantOrder := []string{
		"age3", "coutyp4", "sexident", "irsex", "newrace2", "income",
		"cigflag", "alcflag", "mjever", "cocever", "herever", "lsd",
	}

	if len(specs) != len(wantOrder) {
		t.Fatalf("expected %d charts, got %d", len(wantOrder), len(specs))
	}
	for i, want := range wantOrder {
		if specs[i].Name != want {
			t.Errorf("specs[%d].Name = %s, want %s", i, specs[i].Name, want)
		}
	}
}

func TestDefaultSpecs_CodeOrderMatchesDeclaration(t *testing.T) {
	age, ok := SpecByName("age3")
	if !ok {
		t.Fatal("age3 chart missing from catalog")
	}

	wantCodes := []int{4, 5, 6, 7, 8, 9, 10, 11}
	for i, code := range wantCodes {
		if age.Codes[i] != code {
			t.Errorf("age3 code[%d] = %d, want %d", i, age.Codes[i], code)
		}
	}
}

func TestDrugSpec(t *testing.T) {
	spec := DrugSpec(DrugVariable{Column: "MJEVER", Name: "Marijuana"})

	if spec.Name != "mjever" {
		t.Errorf("expected name mjever, got %s", spec.Name)
	}
	if spec.Title != "Distribution of participants by Marijuana usage (MJEVER)" {
		t.Errorf("unexpected title: %s", spec.Title)
	}
	if spec.Filename != "histographs_drug_Marijuana_eng.jpg" {
		t.Errorf("unexpected filename: %s", spec.Filename)
	}
	if len(spec.Codes) != 2 || spec.Codes[0] != 1 || spec.Codes[1] != 2 {
		t.Errorf("unexpected codes: %v", spec.Codes)
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("drug spec failed validation: %v", err)
	}
}

func TestSpecByName_Missing(t *testing.T) {
	if _, ok := SpecByName("nosuchchart"); ok {
		t.Error("expected lookup miss for unknown chart name")
	}
}

func TestSpecValidate(t *testing.T) {
	valid := DrugSpec(DrugVariable{Column: "LSD", Name: "LSD"})

	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr bool
	}{
		{"valid", func(s *Spec) {}, false},
		{"missing name", func(s *Spec) { s.Name = "" }, true},
		{"missing column", func(s *Spec) { s.Column = "" }, true},
		{"missing title", func(s *Spec) { s.Title = "" }, true},
		{"missing filename", func(s *Spec) { s.Filename = "" }, true},
		{"no codes", func(s *Spec) { s.Codes = nil }, true},
		{"tick count mismatch", func(s *Spec) { s.Ticks = s.Ticks[:1] }, true},
		{"label count mismatch", func(s *Spec) { s.Labels = append(s.Labels, "extra") }, true},
		{"color count mismatch", func(s *Spec) { s.Colors = s.Colors[:1] }, true},
		{"duplicate codes", func(s *Spec) { s.Codes = []int{1, 1} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valid
			spec.Codes = append([]int(nil), valid.Codes...)
			spec.Ticks = append([]string(nil), valid.Ticks...)
			spec.Labels = append([]string(nil), valid.Labels...)
			spec.Colors = append([]string(nil), valid.Colors...)

			tt.mutate(&spec)

			err := spec.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected valid spec, got %v", err)
			}
		})
	}
}
