package server

import "html/template"

type pageData struct {
	Models  []string
	Meals   []string
	Titles  []titleEntry
	Plan    template.HTML
	Kind    string
	Error   string
	Message string
}

// titleEntry is a detected recipe title; ImageURL is set once the session
// holds a generated image for it.
type titleEntry struct {
	Title    string
	ImageURL string
}

type galleryEntry struct {
	Title       string
	ImageURL    string
	DownloadURL string
}

type galleryData struct {
	Entries []galleryEntry
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Plateful: Daily Meal Plan</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
fieldset { margin-bottom: 1.5rem; }
label { display: block; margin-top: .5rem; }
textarea { width: 100%; }
.error { color: #b00020; }
.message { color: #1b5e20; }
.titles form { display: inline-block; margin-right: .5rem; }
</style>
</head>
<body>
<h1>🥗 Plateful: Daily Meal Plan</h1>

{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Message}}<p class="message">{{.Message}}</p>{{end}}

<form method="post" action="/plan">
<fieldset>
<legend>Generation Settings</legend>
<label>Ingredients (comma-separated)
<textarea name="ingredients" rows="4" placeholder="extra-virgin olive oil, whole grains, fresh fruits and vegetables, nuts and seeds, fish, eggs"></textarea>
</label>
<label>Max daily kcal
<input type="number" name="kcal" min="800" max="5000" step="50" value="2000">
</label>
<label><input type="checkbox" name="exact"> Use only the provided ingredients</label>
<label>Model
<select name="model">
{{range .Models}}<option value="{{.}}">{{.}}</option>{{end}}
</select>
</label>
<label>Creativity (temperature)
<input type="number" name="temperature" min="0" max="2" step="0.1" value="1.0">
</label>
<label>Optional: extra style (e.g., spicy, South Indian, high-protein)
<input type="text" name="extra">
</label>
<button type="submit">Generate Meal Plan</button>
</fieldset>
</form>

{{if .Plan}}
<h2>Plan</h2>
{{.Plan}}

{{if .Titles}}
<h2>Images</h2>
<p><strong>Detected recipes:</strong>
{{range $i, $t := .Titles}}{{if $i}}, {{end}}{{$t.Title}}{{end}}</p>
<div class="titles">
{{range .Titles}}
<form method="post" action="/image">
<input type="hidden" name="title" value="{{.Title}}">
<button type="submit">Generate image: {{.Title}}</button>
</form>
{{end}}
</div>
{{range .Titles}}
{{if .ImageURL}}
<figure>
<img src="{{.ImageURL}}" alt="{{.Title}}">
<figcaption>{{.Title}}</figcaption>
</figure>
{{end}}
{{end}}
{{end}}

<h2>Text-to-Speech</h2>
<form method="post" action="/narrate">
<label>Pick a meal to narrate
<select name="meal">
{{range .Meals}}<option value="{{.}}">{{.}}</option>{{end}}
</select>
</label>
<button type="submit">Generate narration</button>
</form>
{{end}}

<p><a href="/gallery">Image gallery</a></p>
</body>
</html>
`))

var galleryTemplate = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Plateful: Image Gallery</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
figure { display: inline-block; margin: 1rem; }
img { max-width: 20rem; }
</style>
</head>
<body>
<h1>Image gallery</h1>
{{if .Entries}}
{{range .Entries}}
<figure>
<img src="{{.ImageURL}}" alt="{{.Title}}">
<figcaption>{{.Title}} &middot; <a href="{{.DownloadURL}}">Download</a></figcaption>
</figure>
{{end}}
{{else}}
<p>No images yet.</p>
{{end}}
<p><a href="/">Back</a></p>
</body>
</html>
`))
