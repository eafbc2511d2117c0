package source

import (
	"net/url"
	"strings"
)

// Metadata выводит провайдера и превью из самого URL. Для известных
// видеохостингов берется стандартная картинка превью, заголовок по умолчанию —
// сам URL, пока пользователь его не отредактирует.
func Metadata(rawURL string) Source {
	src := Source{
		URL:   rawURL,
		Title: rawURL,
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return src
	}

	host := strings.TrimPrefix(u.Host, "www.")
	switch host {
	case "youtube.com", "m.youtube.com", "youtu.be":
		src.Provider = "youtube"
		if id := youtubeVideoID(u); id != "" {
			src.ThumbURL = "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"
		}
	case "vimeo.com":
		src.Provider = "vimeo"
	default:
		src.Provider = host
	}

	return src
}

func youtubeVideoID(u *url.URL) string {
	if strings.HasSuffix(u.Host, "youtu.be") {
		return strings.Trim(u.Path, "/")
	}
	return u.Query().Get("v")
}
