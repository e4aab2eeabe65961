package templates

// Base template - shared structure for all HTML pages.
// Page templates define a "content" block rendered into the layout.

func GetBaseTemplates() string {
	return baseTemplate + headerTemplate + footerTemplate
}

var baseTemplate = `{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="description" content="Create and share digital business cards">
  <title>{{.Title}} - Card Server</title>
  <style>
    * { box-sizing: border-box; }
    body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: linear-gradient(135deg, #0f172a 0%, #1e293b 100%); color: #e2e8f0; min-height: 100vh; }
    .container { max-width: 640px; margin: 0 auto; padding: 1.5rem 1rem 3rem; }
    a { color: #2dd4bf; }
    h1, h2, h3 { margin: 0 0 0.5rem; }
    nav { display: flex; align-items: center; gap: 1rem; padding: 0.75rem 0; margin-bottom: 1.5rem; border-bottom: 1px solid rgba(148, 163, 184, 0.2); }
    nav .brand { font-weight: 700; color: #67e8f9; text-decoration: none; }
    nav a.nav-link { color: #94a3b8; text-decoration: none; }
    nav a.nav-link:hover { color: #e2e8f0; }
    .flash-message { padding: 0.75rem 1rem; border-radius: 0.5rem; margin-bottom: 1rem; background: rgba(45, 212, 191, 0.15); border: 1px solid #2dd4bf; }
    .form-error { padding: 0.75rem 1rem; border-radius: 0.5rem; margin-bottom: 1rem; background: rgba(248, 113, 113, 0.15); border: 1px solid #f87171; color: #fca5a5; }
    .card { border-radius: 1rem; border: 1px solid; padding: 2rem 1.5rem; backdrop-filter: blur(8px); }
    .card section { margin-bottom: 1.75rem; }
    .card section:last-child { margin-bottom: 0; }
    .identity { text-align: center; }
    .avatar { width: 112px; height: 112px; border-radius: 50%; object-fit: cover; border: 3px solid; }
    .avatar-placeholder { display: flex; align-items: center; justify-content: center; margin: 0 auto; font-size: 3rem; background: rgba(148, 163, 184, 0.15); }
    .identity .role { margin: 0.25rem 0 0.75rem; font-weight: 600; }
    .identity .description { margin: 0; line-height: 1.5; }
    .identity .description p { margin: 0 0 0.5rem; }
    .link-grid { display: flex; flex-direction: column; gap: 0.5rem; }
    .link-button { display: block; text-align: center; padding: 0.6rem 1rem; border-radius: 0.5rem; border: 1px solid; text-decoration: none; font-weight: 600; }
    .link-button:hover { filter: brightness(1.2); }
    .video-frame { position: relative; width: 100%; padding-bottom: 56.25%; border-radius: 0.5rem; overflow: hidden; }
    .video-frame iframe { position: absolute; inset: 0; width: 100%; height: 100%; border: 0; }
    .share { text-align: center; }
    .qr-frame { display: inline-block; padding: 0.5rem; background: #ffffff; border-radius: 0.5rem; border: 2px solid; }
    .share-url { word-break: break-all; font-size: 0.85rem; }
    .share-hint { font-size: 0.8rem; margin: 0.25rem 0 0; }
    .recents-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(150px, 1fr)); gap: 0.75rem; }
    .recent-card { border: 1px solid rgba(148, 163, 184, 0.25); border-radius: 0.75rem; padding: 0.75rem; text-align: center; background: rgba(15, 23, 42, 0.7); }
    .recent-card img { background: #ffffff; border-radius: 0.4rem; padding: 0.25rem; }
    .recent-name { display: block; margin: 0.5rem 0 0.1rem; font-weight: 600; word-break: break-word; }
    .recent-type { display: block; font-size: 0.75rem; color: #94a3b8; margin-bottom: 0.5rem; }
    .btn-primary { display: inline-block; padding: 0.5rem 1.25rem; border-radius: 0.5rem; background: #0ea5e9; color: #0f172a; font-weight: 700; text-decoration: none; border: 0; cursor: pointer; font-size: 1rem; }
    .btn-primary:hover { background: #38bdf8; }
    .btn-small { padding: 0.3rem 0.8rem; font-size: 0.8rem; }
    .form-group { margin-bottom: 1rem; }
    .form-group label { display: block; margin-bottom: 0.25rem; font-weight: 600; font-size: 0.9rem; }
    .form-group input[type="text"], .form-group textarea { width: 100%; padding: 0.5rem 0.75rem; border-radius: 0.5rem; border: 1px solid rgba(148, 163, 184, 0.4); background: rgba(15, 23, 42, 0.7); color: #e2e8f0; font-size: 0.95rem; }
    .form-hint { font-size: 0.8rem; color: #94a3b8; margin-top: 0.2rem; }
    .form-row { display: flex; gap: 0.5rem; }
    .form-row input { flex: 1; }
    .theme-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(160px, 1fr)); gap: 0.5rem; }
    fieldset { border: 1px solid rgba(148, 163, 184, 0.25); border-radius: 0.5rem; margin: 0 0 1rem; padding: 0.75rem 1rem 1rem; }
    legend { font-weight: 600; padding: 0 0.4rem; }
    .empty-state { text-align: center; color: #94a3b8; padding: 2rem 0; }
    footer { margin-top: 2rem; text-align: center; font-size: 0.8rem; color: #64748b; }
  </style>
</head>
<body>
  <div class="container">
    {{template "header" .}}
    {{if .Flash.Success}}<div class="flash-message" role="status" aria-live="polite">{{.Flash.Success}}</div>{{end}}
    {{if .Flash.Error}}<div class="form-error" role="alert">{{.Flash.Error}}</div>{{end}}
    <main>
      {{template "content" .}}
    </main>
    {{template "footer" .}}
  </div>
</body>
</html>{{end}}
`

var headerTemplate = `{{define "header"}}
<nav>
  <a href="/" class="brand">Card Server</a>
  <a href="/create-card" class="nav-link">Create a card</a>
</nav>
{{end}}`

var footerTemplate = `{{define "footer"}}
<footer>Digital business cards, shareable by link or QR code.</footer>
{{end}}`
