package templates

// Create template - the card creation form. On a failed submit the form
// is re-rendered with the entered values and an inline error, so nothing
// the user typed is lost.

func GetCreateTemplate() string {
	return createContent
}

var createContent = `{{define "content"}}
<h1>Create your card</h1>
{{if .Error}}<div class="form-error" role="alert">{{.Error}}</div>{{end}}
<form method="POST" action="/create-card" enctype="multipart/form-data">
  <div class="form-group">
    <label for="username">Username *</label>
    <input type="text" id="username" name="username" value="{{.Form.Username}}" placeholder="benbourne" required>
    <div class="form-hint">Becomes part of your card URL: /card/username</div>
  </div>
  <div class="form-group">
    <label for="name">Name *</label>
    <input type="text" id="name" name="name" value="{{.Form.Name}}" placeholder="Ben Bourne" required>
  </div>
  <div class="form-group">
    <label for="role">Role</label>
    <input type="text" id="role" name="role" value="{{.Form.Role}}" placeholder="Frontend Developer">
  </div>
  <div class="form-group">
    <label for="description">Description</label>
    <textarea id="description" name="description" rows="4" placeholder="A few lines about you. Markdown works.">{{.Form.Description}}</textarea>
  </div>
  <div class="form-group">
    <label for="image">Profile picture</label>
    <input type="file" id="image" name="image" accept="image/*">
    <div class="form-hint">Optional, up to 2 MB.</div>
  </div>
  <fieldset>
    <legend>Links</legend>
    {{range .Form.Links}}
    <div class="form-row form-group">
      <input type="text" name="link_label" value="{{.Label}}" placeholder="Label (e.g. GitHub)">
      <input type="text" name="link_url" value="{{.URL}}" placeholder="https://...">
    </div>
    {{end}}
    <div class="form-hint">Rows with both a label and a URL appear on your card.</div>
  </fieldset>
  <div class="form-group">
    <label for="video_link">Video link</label>
    <input type="text" id="video_link" name="video_link" value="{{.Form.VideoLink}}" placeholder="https://www.youtube.com/watch?v=...">
    <div class="form-hint">A YouTube link; the video is embedded on your card.</div>
  </div>
  <fieldset>
    <legend>Theme colors</legend>
    <div class="theme-grid">
      <div class="form-group">
        <label for="theme_primary">Primary</label>
        <input type="text" id="theme_primary" name="theme_primary" value="{{.Form.Theme.Primary}}">
      </div>
      <div class="form-group">
        <label for="theme_secondary">Secondary</label>
        <input type="text" id="theme_secondary" name="theme_secondary" value="{{.Form.Theme.Secondary}}">
      </div>
      <div class="form-group">
        <label for="theme_text">Text</label>
        <input type="text" id="theme_text" name="theme_text" value="{{.Form.Theme.Text}}">
      </div>
      <div class="form-group">
        <label for="theme_accent_text">Accent text</label>
        <input type="text" id="theme_accent_text" name="theme_accent_text" value="{{.Form.Theme.AccentText}}">
      </div>
      <div class="form-group">
        <label for="theme_card_bg">Card background</label>
        <input type="text" id="theme_card_bg" name="theme_card_bg" value="{{.Form.Theme.CardBg}}">
      </div>
    </div>
    <div class="form-hint">Any CSS color value. Leave a field as-is to keep the default.</div>
  </fieldset>
  <button type="submit" class="btn-primary">Create card</button>
</form>
{{end}}`
