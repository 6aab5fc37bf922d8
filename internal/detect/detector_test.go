package detect

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClassifier returns a fixed label or error
type fakeClassifier struct {
	label string
	err   error
	panic bool
	calls int
}

func (f *fakeClassifier) Predict(text string) (string, error) {
	f.calls++
	if f.panic {
		panic("model crashed")
	}
	return f.label, f.err
}

func (f *fakeClassifier) Name() string {
	return "fake"
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		classifier *fakeClassifier
		want       Language
		wantWarn   bool
	}{
		{
			name:       "iso 639-3 label",
			classifier: &fakeClassifier{label: "fra"},
			want:       "fr",
		},
		{
			name:       "fasttext label",
			classifier: &fakeClassifier{label: "__label__arb_Arab"},
			want:       "ar",
		},
		{
			name:       "uppercase label",
			classifier: &fakeClassifier{label: "DEU"},
			want:       "de",
		},
		{
			name:       "unmapped label",
			classifier: &fakeClassifier{label: "lat"},
			want:       Unknown,
			wantWarn:   true,
		},
		{
			name:       "classifier error",
			classifier: &fakeClassifier{err: errors.New("inference failed")},
			want:       Unknown,
			wantWarn:   true,
		},
		{
			name:       "classifier panic",
			classifier: &fakeClassifier{panic: true},
			want:       Unknown,
			wantWarn:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			d := NewWithClassifier(tt.classifier, logger)

			got := d.Detect("some text")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, tt.classifier.calls)

			if tt.wantWarn {
				require.NotNil(t, hook.LastEntry())
				assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
			} else {
				for _, e := range hook.AllEntries() {
					assert.NotEqual(t, logrus.WarnLevel, e.Level)
				}
			}
		})
	}
}

func TestDetectDoesNotCache(t *testing.T) {
	c := &fakeClassifier{label: "spa"}
	d := NewWithClassifier(c, nil)

	d.Detect("hola")
	d.Detect("hola")
	assert.Equal(t, 2, c.calls)
}

func TestLanguageString(t *testing.T) {
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "fr", Language("fr").String())
}

func TestNewClassifier(t *testing.T) {
	_, err := NewClassifier(&Config{Classifier: "fasttext"})
	require.Error(t, err)
	assert.Equal(t, "unknown language classifier: fasttext", err.Error())

	c, err := NewClassifier(&Config{Classifier: "whatlanggo"})
	require.NoError(t, err)
	assert.Equal(t, "whatlanggo", c.Name())
}

func TestNewLinguaClassifierValidation(t *testing.T) {
	_, err := NewLinguaClassifier([]string{"en"})
	require.Error(t, err)

	_, err = NewLinguaClassifier([]string{"en", "not a tag!"})
	require.Error(t, err)
}

func TestLinguaClassifierSubset(t *testing.T) {
	c, err := NewLinguaClassifier([]string{"en", "fr", "de"})
	require.NoError(t, err)

	d := NewWithClassifier(c, nil)
	assert.Equal(t, Language("de"), d.Detect("Ich habe heute keine Zeit, weil ich arbeiten muss."))
	assert.Equal(t, Language("fr"), d.Detect("Je voudrais une tasse de café avec du lait, s'il vous plaît."))
}

func TestWhatlangClassifier(t *testing.T) {
	d := NewWithClassifier(NewWhatlangClassifier(), nil)

	got := d.Detect("Bonjour tout le monde, comment allez-vous aujourd'hui? Je suis très content de vous voir ici avec nous.")
	assert.Equal(t, Language("fr"), got)
}
