package langguess_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/langguess"
	"github.com/npillmayer/langguess/modeldir"
	"github.com/npillmayer/langguess/trigramfile"
)

var samples = map[langguess.Code]string{
	"en": "This is a sentence that was written in English, and the computer should be able to see that there is nothing else in it.",
	"fr": "Les enfants de la maison sont partis à l'école avec leurs amis, et ils ont oublié leurs livres sur la table de la cuisine.",
	"de": "Die Kinder sind mit ihren Freunden in die Schule gegangen, und sie haben ihre Bücher auf dem Tisch in der Küche vergessen.",
	"es": "Los niños de la casa se fueron a la escuela con sus amigos, y olvidaron sus libros sobre la mesa de la cocina.",
	"it": "I bambini della casa sono andati a scuola con i loro amici, e hanno dimenticato i loro libri sul tavolo della cucina.",
	"nl": "De kinderen van het huis zijn met hun vrienden naar school gegaan, en ze hebben hun boeken op de tafel in de keuken vergeten.",
	"pt": "As crianças da casa foram para a escola com os amigos, e esqueceram os livros em cima da mesa da cozinha.",
	"ru": "Дети из этого дома ушли в школу вместе со своими друзьями и забыли свои книги на столе в кухне.",
	"uk": "Діти з цієї хати пішли до школи разом зі своїми друзями і забули свої книжки на столі в кухні.",
	"bg": "Децата от тази къща отидоха на училище заедно с приятелите си и забравиха книгите си на масата в кухнята.",
	"ar": "ذهب الأطفال إلى المدرسة مع أصدقائهم ونسوا كتبهم على الطاولة في المطبخ.",
	"fa": "بچه‌ها با دوستانشان به مدرسه رفتند و کتاب‌هایشان را روی میز آشپزخانه جا گذاشتند.",
	"hi": "बच्चे अपने दोस्तों के साथ स्कूल गए और अपनी किताबें रसोई की मेज़ पर भूल गए।",
	"ne": "बालबालिकाहरू आफ्ना साथीहरूसँग विद्यालय गए र आफ्ना किताबहरू भान्छाको टेबलमा बिर्से।",
}

func mustLoadModels(t testing.TB) *langguess.ModelSet {
	t.Helper()
	models, err := modeldir.Load(os.DirFS("testdata"), "trigrams")
	require.NoError(t, err, "cannot load trigram fixtures")
	return models
}

func TestGuessScoredLanguages(t *testing.T) {
	g := langguess.New(mustLoadModels(t))
	for code, text := range samples {
		t.Run(string(code), func(t *testing.T) {
			assert.Equal(t, code, g.Guess(text))
		})
	}
}

func TestGuessSingleScriptLanguages(t *testing.T) {
	g := langguess.New(nil) // no models needed
	tests := []struct {
		text string
		want langguess.Code
	}{
		{text: "Ελληνικά γράμματα", want: "el"},
		{text: "Հայերեն", want: "hy"},
		{text: "עברית", want: "he"},
		{text: "ภาษาไทย", want: "th"},
		{text: "ქართული", want: "ka"},
		{text: "한국어", want: "ko"},
		{text: "こんにちは", want: "ja"},
		{text: "日本語の文章です", want: "ja"},
		{text: "中文字", want: "zh"},
		{text: "ᠮᠣᠩᠭᠣᠯ", want: "mn-Mong"},
		{text: "ខ្មែរ", want: "km"},
		{text: "ạảẹẻịỉ", want: "vi"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Guess(tt.text), "text %q", tt.text)
	}
}

func TestGuessSkipsUndecidedScripts(t *testing.T) {
	g := langguess.New(nil)
	// Ethiopic outnumbers Greek but decides nothing
	assert.Equal(t, langguess.Code("el"), g.Guess("ሰላምሰላምሰላም αβ"))
	// Arabic Presentation Forms-A is counted with CJK ideographs
	assert.Equal(t, langguess.Code("zh"), g.Guess("\ufb50\ufb51\ufb52\ufb53"))
}

func TestGuessExtendedLatinCandidates(t *testing.T) {
	text := "čšžřěéíáýůúňďť čšžřěéíáýůúňďť"
	sample := langguess.Normalize(text)
	require.Equal(t, []langguess.Script{langguess.ScriptExtendedLatin}, langguess.Profile(sample))
	models := langguess.NewModelSet()
	// "en" matches the sample exactly, but is not an Extended Latin candidate
	require.NoError(t, models.Add("en", langguess.NewRanking(sample).Model()))
	require.NoError(t, models.Add("cs", langguess.NewRanking("unrelated sample text for czech").Model()))
	g := langguess.New(models)
	assert.Equal(t, langguess.Code("cs"), g.Guess(text))
}

func TestGuessShortInput(t *testing.T) {
	g := langguess.New(mustLoadModels(t))
	for _, text := range []string{"", "ab", "a b", "!!?", "中文", "123 456"} {
		assert.Equal(t, langguess.Unknown, g.Guess(text), "text %q", text)
	}
	// Cyrillic is detected, but the sample is too short for scoring
	assert.Equal(t, langguess.Unknown, g.Guess("Привет мир"))
	g = langguess.New(mustLoadModels(t), langguess.WithMinLength(5))
	assert.NotEqual(t, langguess.Unknown, g.Guess("Привет мир"))
}

func TestGuessWithoutModels(t *testing.T) {
	g := langguess.New(langguess.NewModelSet())
	assert.Equal(t, langguess.Unknown, g.Guess(samples["en"]))
	assert.Equal(t, langguess.Unknown, g.Guess(samples["ru"]))
}

func TestGuessInfo(t *testing.T) {
	g := langguess.New(mustLoadModels(t))
	info := g.GuessInfo(samples["en"])
	assert.Equal(t, langguess.Code("en"), info.Code)
	id, ok := info.ID()
	assert.True(t, ok)
	assert.Equal(t, 26110, id)
	name, ok := info.Name()
	assert.True(t, ok)
	assert.Equal(t, "english", name)

	info = g.GuessInfo("")
	assert.True(t, info.Code.IsUnknown())
	_, ok = info.ID()
	assert.False(t, ok)
	_, ok = info.Name()
	assert.False(t, ok)

	id, ok = g.GuessID(samples["fr"])
	assert.True(t, ok)
	assert.Equal(t, 26150, id)
	name, ok = g.GuessName(samples["de"])
	assert.True(t, ok)
	assert.Equal(t, "german", name)
	_, ok = g.GuessName("ᠮᠣᠩᠭᠣᠯ") // mn-Mong has no display name
	assert.False(t, ok)
}

func TestGuessBytes(t *testing.T) {
	g := langguess.New(mustLoadModels(t))
	assert.Equal(t, langguess.Unknown, g.GuessBytes(nil))
	assert.Equal(t, langguess.Code("en"), g.GuessBytes([]byte(samples["en"])))
}

func TestPortugueseVariantsCollapse(t *testing.T) {
	g := langguess.New(mustLoadModels(t))
	assert.Equal(t, langguess.Code("pt"), g.Guess(samples["pt"]))
	scores := g.Scores(samples["pt"], []langguess.Code{"pt_BR", "pt_PT"})
	require.Len(t, scores, 2)
	assert.Equal(t, langguess.Code("pt_BR"), scores[0].Code)
	info := g.GuessInfo(samples["pt"])
	assert.Equal(t, "pt (26390, portuguese)", info.String())
}

func TestPortugueseWithoutVariantModels(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "trigrams", "pt"))
	require.NoError(t, err)
	defer f.Close()
	models := langguess.NewModelSet()
	require.NoError(t, trigramfile.LoadModel(models, "pt", f))
	g := langguess.New(models)
	// the regional pass has no models and cannot decide
	assert.Equal(t, langguess.Unknown, g.Guess(samples["pt"]))
}

func TestScoresRankCorrectLanguageFirst(t *testing.T) {
	g := langguess.New(mustLoadModels(t))
	scores := g.Scores(samples["fr"], langguess.Candidates(langguess.ScriptBasicLatin))
	require.NotEmpty(t, scores)
	distances := make(map[langguess.Code]int, len(scores))
	best := scores[0]
	for _, s := range scores {
		distances[s.Code] = s.Distance
		if s.Distance < best.Distance {
			best = s
		}
	}
	assert.Equal(t, langguess.Code("fr"), best.Code)
	assert.Less(t, distances["fr"], distances["de"])
	assert.Less(t, distances["fr"], distances["nl"])
	assert.Empty(t, g.Scores("zu kurz", []langguess.Code{"de"}))
}

func TestEqualDistanceFavorsEarlierCandidate(t *testing.T) {
	sample := langguess.Normalize(samples["nl"])
	model := langguess.NewRanking(sample).Model()
	models := langguess.NewModelSet()
	require.NoError(t, models.Add("nl", model))
	require.NoError(t, models.Add("de", model))
	g := langguess.New(models)
	// "de" precedes "nl" in the Latin candidate set
	assert.Equal(t, langguess.Code("de"), g.Guess(samples["nl"]))
}

func TestNewFreezesModels(t *testing.T) {
	models := langguess.NewModelSet()
	langguess.New(models)
	assert.ErrorIs(t, models.Add("en", langguess.NewModel(nil)), langguess.ErrFrozen)
}

func TestConcurrentGuesses(t *testing.T) {
	g := langguess.New(mustLoadModels(t))
	var wg sync.WaitGroup
	errs := make(chan string, 8*len(samples))
	for i := 0; i < 8; i++ {
		for code, text := range samples {
			wg.Add(1)
			go func(code langguess.Code, text string) {
				defer wg.Done()
				if got := g.Guess(text); got != code {
					errs <- string(code) + " guessed as " + got.String()
				}
			}(code, text)
		}
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func BenchmarkGuess(b *testing.B) {
	g := langguess.New(mustLoadModels(b))
	text := samples["de"]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Guess(text)
	}
}
