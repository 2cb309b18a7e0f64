package core

import (
	"errors"
	"testing"
)

func TestConstructorsRejectMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		build    func() error
		wantPath string
	}{
		{
			name: "header without title",
			build: func() error {
				_, err := NewHeader("", "sub", "")
				return err
			},
			wantPath: "title",
		},
		{
			name: "header with whitespace title",
			build: func() error {
				_, err := NewHeader("   ", "", "")
				return err
			},
			wantPath: "title",
		},
		{
			name: "header link without label",
			build: func() error {
				_, err := NewHeader("Demo", "", "", Link{Label: "Live", URL: "https://ex.com"}, Link{URL: "https://ex.com"})
				return err
			},
			wantPath: "links[1].label",
		},
		{
			name: "header link without url",
			build: func() error {
				_, err := NewHeader("Demo", "", "", Link{Label: "Live"})
				return err
			},
			wantPath: "links[0].url",
		},
		{
			name: "info grid without cells",
			build: func() error {
				_, err := NewInfoGrid()
				return err
			},
			wantPath: "cells",
		},
		{
			name: "info grid cell without label",
			build: func() error {
				_, err := NewInfoGrid(InfoCell{Value: "Lead Developer"})
				return err
			},
			wantPath: "cells[0].label",
		},
		{
			name: "info grid cell without value",
			build: func() error {
				_, err := NewInfoGrid(InfoCell{Label: "Role"}, InfoCell{Label: "Timeline"})
				return err
			},
			wantPath: "cells[0].value",
		},
		{
			name: "tech list without groups",
			build: func() error {
				_, err := NewTechList("Technologies")
				return err
			},
			wantPath: "groups",
		},
		{
			name: "tech group without items",
			build: func() error {
				_, err := NewTechList("", TechGroup{Label: "PERN Stack:"})
				return err
			},
			wantPath: "groups[0].items",
		},
		{
			name: "tech group with empty item",
			build: func() error {
				_, err := NewTechList("", TechGroup{Items: []string{"Go"}}, TechGroup{Items: []string{"Redux", ""}})
				return err
			},
			wantPath: "groups[1].items[1]",
		},
		{
			name: "section without heading",
			build: func() error {
				_, err := NewNarrativeSection("", []string{"text"})
				return err
			},
			wantPath: "heading",
		},
		{
			name: "section with empty paragraph",
			build: func() error {
				_, err := NewNarrativeSection("Summary", []string{"ok", " "})
				return err
			},
			wantPath: "paragraphs[1]",
		},
		{
			name: "section with invalid nested figure",
			build: func() error {
				_, err := NewNarrativeSection("Summary", nil, Figure{Caption: "no image"})
				return err
			},
			wantPath: "children[0].image",
		},
		{
			name: "section with nested header",
			build: func() error {
				_, err := NewNarrativeSection("Summary", nil, CodeSnippet{Source: "x"}, Header{Title: "Nested"})
				return err
			},
			wantPath: "children[1]",
		},
		{
			name: "section with nil child",
			build: func() error {
				_, err := NewNarrativeSection("Summary", nil, nil)
				return err
			},
			wantPath: "children[0]",
		},
		{
			name: "code snippet without source",
			build: func() error {
				_, err := NewCodeSnippet("go", "")
				return err
			},
			wantPath: "source",
		},
		{
			name: "code snippet with only whitespace",
			build: func() error {
				_, err := NewCodeSnippet("go", "\n\t\n")
				return err
			},
			wantPath: "source",
		},
		{
			name: "figure without image",
			build: func() error {
				_, err := NewFigure("", "caption", "alt")
				return err
			},
			wantPath: "image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if err == nil {
				t.Fatal("Expected InvalidBlockDefinition error, got nil")
			}
			if !errors.Is(err, ErrInvalidBlockDefinition) {
				t.Errorf("Expected errors.Is(err, ErrInvalidBlockDefinition), got %v", err)
			}
			var ibd *InvalidBlockDefinitionError
			if !errors.As(err, &ibd) {
				t.Fatalf("Expected *InvalidBlockDefinitionError, got %T", err)
			}
			if ibd.Path != tt.wantPath {
				t.Errorf("Expected path %q, got %q", tt.wantPath, ibd.Path)
			}
			if ibd.Reason == "" {
				t.Error("Expected a reason")
			}
		})
	}
}

func TestConstructorsAcceptValidBlocks(t *testing.T) {
	if _, err := NewHeader("Demo", "", "", Link{Label: "Live", URL: "https://ex.com"}); err != nil {
		t.Errorf("NewHeader() error = %v", err)
	}
	if _, err := NewInfoGrid(InfoCell{Label: "Timeline:", Value: "August 2020 - October 2020"}); err != nil {
		t.Errorf("NewInfoGrid() error = %v", err)
	}
	if _, err := NewTechList("", TechGroup{Items: []string{"Go"}}); err != nil {
		t.Errorf("NewTechList() error = %v", err)
	}
	if _, err := NewNarrativeSection("Challenges Faced:", nil); err != nil {
		t.Errorf("NewNarrativeSection() error = %v", err)
	}
	if _, err := NewCodeSnippet("", "  x := 1\n"); err != nil {
		t.Errorf("NewCodeSnippet() error = %v", err)
	}
	if _, err := NewFigure("/img/a.png", "", ""); err != nil {
		t.Errorf("NewFigure() error = %v", err)
	}
}

func TestConstructorsCopyInputSlices(t *testing.T) {
	links := []Link{{Label: "Live", URL: "https://ex.com"}}
	h, err := NewHeader("Demo", "", "", links...)
	if err != nil {
		t.Fatalf("NewHeader() error = %v", err)
	}
	links[0].Label = "Changed"

	if h.Links[0].Label != "Live" {
		t.Errorf("Expected header to keep its own links, got %q", h.Links[0].Label)
	}
}

func TestBlockKinds(t *testing.T) {
	tests := []struct {
		block Block
		want  BlockKind
	}{
		{Header{}, KindHeader},
		{InfoGrid{}, KindInfoGrid},
		{TechList{}, KindTechList},
		{NarrativeSection{}, KindNarrative},
		{CodeSnippet{}, KindCode},
		{Figure{}, KindFigure},
	}

	for _, tt := range tests {
		if got := tt.block.Kind(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
}
