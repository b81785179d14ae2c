package regions

import (
	"golang.org/x/net/html"

	"github.com/eringen/pagewire/dom"
)

// ClientScriptAttr marks the inline script that binds rendered regions in the
// browser.
const ClientScriptAttr = "data-pagewire"

// ClientScript runs the drawer transitions in the browser and hands the
// carousel options to the carousel library. It mirrors Transition: the toggle
// flips the drawer, a link or an activation outside the panel closes it, and
// an open drawer locks body scrolling.
const ClientScript = `(function () {
  var mount = document.querySelector("[data-carousel-options]");
  if (mount && window.Swiper) {
    new Swiper(mount.dataset.carousel, JSON.parse(mount.dataset.carouselOptions));
  }
  var toggle = document.querySelector("` + SelMobileToggle + `");
  var panel = document.querySelector("` + SelMobilePanel + `");
  if (!toggle || !panel) return;
  function setOpen(open) {
    panel.classList.toggle("active", open);
    document.body.style.overflow = open ? "hidden" : "";
  }
  toggle.addEventListener("click", function (e) {
    e.stopPropagation();
    setOpen(!panel.classList.contains("active"));
  });
  panel.querySelectorAll("a").forEach(function (a) {
    a.addEventListener("click", function () { setOpen(false); });
  });
  document.addEventListener("click", function (e) {
    if (panel.classList.contains("active") && !panel.contains(e.target) && !toggle.contains(e.target)) {
      setOpen(false);
    }
  });
})();`

// RenderClientScript appends ClientScript to the end of the body, after any
// library script, replacing a previous copy. It does nothing and reports
// false when the page has neither a drawer panel nor a configured carousel.
func RenderClientScript(doc *dom.Document) bool {
	for _, old := range doc.QueryAll("script[" + ClientScriptAttr + "]") {
		dom.Remove(old)
	}
	if !doc.Exists(SelMobilePanel) && !doc.Exists("[data-carousel-options]") {
		return false
	}
	doc.Body().AppendChild(dom.El("script", []html.Attribute{dom.Attr(ClientScriptAttr, "")},
		dom.Text(ClientScript),
	))
	return true
}
