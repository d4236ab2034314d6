package teisplit

// Notes:
// - PageRange: tests validation, length, last page and page list
// - Job: tests validation order (input, year, range)
// - Stage/StageError: tests names and unwrapping
// - Naming: tests intermediate and final file names, single and multi-page

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPageRange_Validate - Range bounds
// ---------------------------------------------------------------------------

func TestPageRange_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       PageRange
		wantErr error
	}{
		{name: "typical range", r: PageRange{Start: 81, Stop: 89}, wantErr: nil},
		{name: "single page", r: PageRange{Start: 81, Stop: 82}, wantErr: nil},
		{name: "page zero", r: PageRange{Start: 0, Stop: 1}, wantErr: nil},
		{name: "empty range", r: PageRange{Start: 81, Stop: 81}, wantErr: ErrInvalidRange},
		{name: "reversed range", r: PageRange{Start: 89, Stop: 81}, wantErr: ErrInvalidRange},
		{name: "negative start", r: PageRange{Start: -1, Stop: 5}, wantErr: ErrInvalidRange},
		{name: "zero value", r: PageRange{}, wantErr: ErrInvalidRange},
		{name: "longest range", r: PageRange{Start: 1, Stop: 1 + MaxPages}, wantErr: nil},
		{name: "too long", r: PageRange{Start: 1, Stop: 2 + MaxPages}, wantErr: ErrInvalidRange},
		{name: "mistyped stop", r: PageRange{Start: 81, Stop: 100000000}, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.r.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPageRange_Accessors - Len, Last, Pages, String
// ---------------------------------------------------------------------------

func TestPageRange_Accessors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		r         PageRange
		wantLen   int
		wantLast  int
		wantPages []int
		wantStr   string
	}{
		{
			name:      "eight pages",
			r:         PageRange{Start: 81, Stop: 89},
			wantLen:   8,
			wantLast:  88,
			wantPages: []int{81, 82, 83, 84, 85, 86, 87, 88},
			wantStr:   "81-88",
		},
		{
			name:      "single page",
			r:         PageRange{Start: 5, Stop: 6},
			wantLen:   1,
			wantLast:  5,
			wantPages: []int{5},
			wantStr:   "5",
		},
		{
			name:      "empty range has no pages",
			r:         PageRange{Start: 3, Stop: 3},
			wantLen:   0,
			wantLast:  2,
			wantPages: nil,
			wantStr:   "3-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.r.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := tt.r.Last(); got != tt.wantLast {
				t.Errorf("Last() = %d, want %d", got, tt.wantLast)
			}
			if got := tt.r.Pages(); !slices.Equal(got, tt.wantPages) {
				t.Errorf("Pages() = %v, want %v", got, tt.wantPages)
			}
			if got := tt.r.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestJob_Validate - Job validation
// ---------------------------------------------------------------------------

func TestJob_Validate(t *testing.T) {
	t.Parallel()

	valid := Job{
		InputPath: "export_files/file.xml",
		Metadata:  Metadata{Year: "1758"},
		Pages:     PageRange{Start: 81, Stop: 89},
	}

	tests := []struct {
		name    string
		modify  func(j *Job)
		wantErr error
	}{
		{name: "valid job", modify: func(j *Job) {}, wantErr: nil},
		{name: "empty input path", modify: func(j *Job) { j.InputPath = "" }, wantErr: ErrEmptyInputPath},
		{name: "empty year", modify: func(j *Job) { j.Metadata.Year = "" }, wantErr: ErrEmptyYear},
		{name: "year with slash", modify: func(j *Job) { j.Metadata.Year = "17/58" }, wantErr: ErrInvalidYear},
		{name: "year with backslash", modify: func(j *Job) { j.Metadata.Year = `17\58` }, wantErr: ErrInvalidYear},
		{name: "year with dot-dot", modify: func(j *Job) { j.Metadata.Year = "..1758" }, wantErr: ErrInvalidYear},
		{name: "invalid range", modify: func(j *Job) { j.Pages = PageRange{Start: 9, Stop: 1} }, wantErr: ErrInvalidRange},
		{
			name:    "input checked before range",
			modify:  func(j *Job) { j.InputPath = ""; j.Pages = PageRange{} },
			wantErr: ErrEmptyInputPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := valid
			tt.modify(&job)
			err := job.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStage_String - Stage names
// ---------------------------------------------------------------------------

func TestStage_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stage Stage
		want  string
	}{
		{StageNone, "none"},
		{StageParsed, "parsed"},
		{StageHeaderBuilt, "header-built"},
		{StageSelected, "selected"},
		{StageAssembled, "assembled"},
		{StageIntermediateWritten, "intermediate-written"},
		{StageTransformed, "transformed"},
		{StageFinalWritten, "final-written"},
		{StageIntermediateDeleted, "intermediate-deleted"},
		{Stage(42), "stage(42)"},
		{Stage(-1), "stage(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.stage.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStageError - Message and unwrapping
// ---------------------------------------------------------------------------

func TestStageError(t *testing.T) {
	t.Parallel()

	var err error = &StageError{Stage: StageTransformed, Err: ErrTransform}

	if got, want := err.Error(), "transformed: XSLT transform failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrTransform) {
		t.Error("errors.Is(err, ErrTransform) = false, want true")
	}

	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageTransformed {
		t.Errorf("errors.As() stage = %v, want %v", se, StageTransformed)
	}
}

// ---------------------------------------------------------------------------
// TestNaming - Intermediate and final file names
// ---------------------------------------------------------------------------

func TestNaming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		dir              string
		year             string
		pages            PageRange
		wantIntermediate string
		wantFinal        string
	}{
		{
			name:             "default range",
			dir:              "output",
			year:             "1758",
			pages:            PageRange{Start: 81, Stop: 89},
			wantIntermediate: filepath.Join("output", "1758_81-88_before.xml"),
			wantFinal:        filepath.Join("output", "1758_081-088.xml"),
		},
		{
			name:             "single page",
			dir:              "output",
			year:             "1758",
			pages:            PageRange{Start: 5, Stop: 6},
			wantIntermediate: filepath.Join("output", "1758_5_before.xml"),
			wantFinal:        filepath.Join("output", "1758_005.xml"),
		},
		{
			name:             "wide numbers are not truncated",
			dir:              "out",
			year:             "1761",
			pages:            PageRange{Start: 998, Stop: 1002},
			wantIntermediate: filepath.Join("out", "1761_998-1001_before.xml"),
			wantFinal:        filepath.Join("out", "1761_998-1001.xml"),
		},
		{
			name:             "empty directory",
			dir:              "",
			year:             "1759",
			pages:            PageRange{Start: 1, Stop: 3},
			wantIntermediate: "1759_1-2_before.xml",
			wantFinal:        "1759_001-002.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IntermediateName(tt.dir, tt.year, tt.pages); got != tt.wantIntermediate {
				t.Errorf("IntermediateName() = %q, want %q", got, tt.wantIntermediate)
			}
			if got := FinalName(tt.dir, tt.year, tt.pages); got != tt.wantFinal {
				t.Errorf("FinalName() = %q, want %q", got, tt.wantFinal)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWithTimeout - Panics on non-positive durations
// ---------------------------------------------------------------------------

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}
