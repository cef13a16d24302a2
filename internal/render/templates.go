package render

// Page templates. The head and header partials are shared by both page
// kinds; the home and post templates are complete HTML5 documents.
//
// Plain-text fields are escaped by html/template; the only raw insertion is
// the post body, which is typed template.HTML because the markdown converter
// already sanitized it.

const headTemplate = `{{define "head"}}<!DOCTYPE html>
<html lang="{{.Site.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="description" content="{{.Description}}">
{{if .Site.Favicon}}<link rel="icon" href="{{.Site.Favicon}}">
{{end}}<title>{{if .PageTitle}}{{smart .PageTitle}} | {{end}}{{.Site.Title}}</title>
{{if .Site.FontStylesheet}}<link rel="preload" as="style" href="{{.Site.FontStylesheet}}" onload="this.onload=null;this.rel='stylesheet'">
<noscript><link rel="stylesheet" href="{{.Site.FontStylesheet}}"></noscript>
{{end}}<style>{{.Styles}}</style>
</head>
{{end}}`

const headerTemplate = `{{define "header"}}<header class="header">
<a href="/" title="home"><h1 class="header__title">{{.Site.Title}}</h1></a>
<p class="header__name">{{.Site.Author}}</p>
<section class="header__links">
{{range .Site.Links}}<a class="header__links__link" href="{{.URL}}">{{.Name}}</a>
{{end}}</section>
<hr>
</header>
{{end}}`

const homeTemplate = `{{template "head" .}}<body>
{{template "header" .}}<main class="main">
<section class="main__post_list">
{{range .Posts}}<article class="main__post">
<a href="{{.URL}}"><h3 class="main__post__title">{{smart .Title}}</h3></a>
<small class="main__post__date"><time datetime="{{isoDate .Date}}">{{longDate .Date}}</time></small>
{{if .Description}}<p class="main__post__description">{{smart .Description}}</p>
{{end}}</article>
{{end}}</section>
</main>
</body>
</html>
`

const postTemplate = `{{template "head" .}}<body>
{{template "header" .}}<main class="main">
<article class="post">
<header class="post__header">
<h2 class="post__heading">{{smart .Post.Title}}</h2>
<time class="post__heading__time" datetime="{{isoDate .Post.Date}}">{{longDate .Post.Date}}</time>
</header>
<main class="post__main">
{{.Post.HTML}}</main>
</article>
</main>
<footer class="post__footer">
<hr>
Tell me I'm wrong: <a class="post__footer__email" href="mailto:{{.Site.Email}}">{{.Site.Email}}</a>
</footer>
</body>
</html>
`
