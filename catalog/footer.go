package catalog

import "fmt"

const trustBadgesTemplate = `Create 4 trust badge contents in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON:

{
  "badge_1": {
    "title": "<strong>Badge title</strong>",
    "text": "<p>Badge description</p>"
  },
  "badge_2": {
    "title": "<strong>Badge title</strong>",
    "text": "<p>Badge description</p>"
  },
  "badge_3": {
    "title": "<strong>Badge title</strong>",
    "text": "<p>Badge description</p>"
  },
  "badge_4": {
    "title": "<strong>Badge title</strong>",
    "text": "<p>Badge description</p>"
  }
}

Requirements:
- 'title' must use HTML <strong> tags, e.g., <strong>Fast Shipping</strong>
- 'text' must use HTML <p> tags, e.g., <p>Doorstep delivery to most of the US.</p>
- Keep titles short (2-4 words) and texts concise (1 sentence)
- Focus on trust-building themes: shipping, quality, customer satisfaction, returns
- Match the product's context and brand tone

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const scrollFooterTemplate = `Create 3 scrolling footer texts in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON:

{
  "text_1": "<strong>Scrolling text</strong>",
  "outline_1": "Outline word",
  "text_2": "<strong>Scrolling text</strong>",
  "outline_2": "Outline word",
  "text_3": "<strong>Scrolling text</strong>",
  "outline_3": "Outline word"
}

Requirements:
- 'text_1', 'text_2', 'text_3' must use HTML <strong> tags, e.g., <strong>Free Shipping</strong>
- 'outline_1', 'outline_2', 'outline_3' must be raw text, single word or short phrase
- Keep texts short (2-4 words) and impactful, focusing on benefits like shipping, support, or quality
- Outline words should be a key word from the corresponding text
- Match the product's context and brand tone

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const newsletterTemplate = `Create newsletter section content in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON:

{
  "heading": "Newsletter heading",
  "text": "<p>Newsletter description</p>"
}

Requirements:
- 'heading' must be raw text, no HTML tags
- 'text' must use HTML <p> tags, e.g., <p>Be the first to know about new collections.</p>
- Heading should be short (5-8 words), encouraging subscription
- Text should be 1-2 sentences, highlighting benefits of subscribing
- Match the product's context and brand tone

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const footerContactTemplate = `Create footer contact content in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON:

{
  "heading": "Contact heading",
  "subtext": "<p>Contact details</p>"
}

Requirements:
- 'heading' must be raw text, no HTML tags
- 'subtext' must use HTML <p> tags, including at least email and phone with <strong> tags
- Heading should be short (3-6 words), inviting contact
- Subtext should include a generic email, phone, and optional support hours
- Match the product's context and brand tone

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

// FooterPage returns the content catalog for the storefront footer.
func FooterPage() Page {
	return Page{
		Name: "footer",
		Translations: []Translation{
			{Source: "* We Promise not to use your email for Spam! You can unsubscribe at any time.", Tokens: []string{"NEW_NEWSLETTER_SMALL_TEXT_TRANSLATED"}},
			{Source: "Information", Tokens: []string{"NEW_FOOTER_INFO_HEADING_TRANSLATED"}},
			{Source: "Shop", Tokens: []string{"NEW_FOOTER_SHOP_HEADING_TRANSLATED"}},
			{Source: "Subscribe to our emails", Tokens: []string{"NEW_FOOTER_NEWSLETTER_HEADING_TRANSLATED"}},
		},
		Units: []Unit{
			{
				Key:       "trust_badges",
				Shape:     JSONObject,
				MaxTokens: 600,
				Fields: []Field{
					{Name: "badge_1.title", Token: "NEW_TRUST_BADGE_1_TITLE_GENERATED"},
					{Name: "badge_1.text", Token: "NEW_TRUST_BADGE_1_TEXT_GENERATED"},
					{Name: "badge_2.title", Token: "NEW_TRUST_BADGE_2_TITLE_GENERATED"},
					{Name: "badge_2.text", Token: "NEW_TRUST_BADGE_2_TEXT_GENERATED"},
					{Name: "badge_3.title", Token: "NEW_TRUST_BADGE_3_TITLE_GENERATED"},
					{Name: "badge_3.text", Token: "NEW_TRUST_BADGE_3_TEXT_GENERATED"},
					{Name: "badge_4.title", Token: "NEW_TRUST_BADGE_4_TITLE_GENERATED"},
					{Name: "badge_4.text", Token: "NEW_TRUST_BADGE_4_TEXT_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(trustBadgesTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:   "scroll_footer_texts",
				Shape: JSONObject,
				Fields: []Field{
					{Name: "text_1", Token: "NEW_SCROLL_FOOTER_TEXT_1_GENERATED"},
					{Name: "outline_1", Token: "NEW_SCROLL_FOOTER_OUTLINE_1_GENERATED"},
					{Name: "text_2", Token: "NEW_SCROLL_FOOTER_TEXT_2_GENERATED"},
					{Name: "outline_2", Token: "NEW_SCROLL_FOOTER_OUTLINE_2_GENERATED"},
					{Name: "text_3", Token: "NEW_SCROLL_FOOTER_TEXT_3_GENERATED"},
					{Name: "outline_3", Token: "NEW_SCROLL_FOOTER_OUTLINE_3_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(scrollFooterTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:   "newsletter",
				Shape: JSONObject,
				Fields: []Field{
					{Name: "heading", Token: "NEW_NEWSLETTER_HEADING_GENERATED"},
					{Name: "text", Token: "NEW_NEWSLETTER_TEXT_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(newsletterTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:   "footer_contact",
				Shape: JSONObject,
				Fields: []Field{
					{Name: "heading", Token: "NEW_FOOTER_CONTACT_HEADING_GENERATED"},
					{Name: "subtext", Token: "NEW_FOOTER_CONTACT_SUBTEXT_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(footerContactTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
		},
	}
}
