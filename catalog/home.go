package catalog

import "fmt"

const heroHeadingTemplate = `You are a marketing copywriter. Create a compelling hero heading in %s for %s™'s %s with the following description: %s.

Requirements:
- 2 lines maximum, use \n for line break
- Emphasize confidence and transformation
- Include emotional appeal
- Keep it short and impactful
- Mention the holiday theme

Example format: "Rediscover Your Confidence\nThis Holiday"

IMPORTANT: Return ONLY the heading text, no markdown, no code blocks, no explanations.`

const heroSubheadingTemplate = `Create a compelling hero subheading in %s for %s™'s %s with the following description: %s.

Requirements:
- Include discount percentage (up to 55%%)
- Use HTML format: Save up to 55%% on <strong>Text Here</strong>
- Focus on exclusivity and limited time
- Keep it under 15 words

IMPORTANT: Return ONLY the subheading text, no markdown, no code blocks, no explanations.`

const ratingTextTemplate = `Create a customer rating text in %s for %s™.

Requirements:
- Format: "Rated X.X/5 by XXX+ Happy Customers"
- Use realistic numbers (4.7-4.9 rating, 800-2000 customers)
- Keep the word "Happy" or equivalent in %s

IMPORTANT: Return ONLY the rating text, no markdown, no code blocks, no explanations.`

const testimonialsTemplate = `Create 3 customer testimonials in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON with this EXACT format (no markdown, no explanations):

{
  "testimonial_1": {
    "caption": "Short benefit phrase",
    "text": "Customer quote about first experience",
    "author": "<p><strong>Benefit Title</strong><br/>— <em>Name, City, Region</em></p>"
  },
  "testimonial_2": {
    "caption": "Different benefit phrase",
    "text": "Quote from long-term user perspective",
    "author": "<p><strong>Different Title</strong><br/>— <em>Name2, City2, Region2</em></p>"
  },
  "testimonial_3": {
    "caption": "Third benefit phrase",
    "text": "Quote from converted skeptic angle",
    "author": "<p><strong>Third Title</strong><br/>— <em>Name3, City3, Region3</em></p>"
  }
}`

const customerReviewsTemplate = `Create 3 customer reviews in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON (no markdown, no explanations):

{
  "review_1": "<h1>Experience headline<br/></h1><p>Detailed review content.</p><h6><strong>Name - City</strong></h6>",
  "review_2": "<h1>Comparative headline with <em>%s™</em><br/></h1><p>Review comparing alternatives.</p><h6><strong>Name2 - City2</strong></h6>",
  "review_3": "<h1>Transformation headline about <em>%s™</em><br/></h1><p>Review about impact.</p><h6><strong>Name3 - City3</strong></h6>"
}`

const benefitsTemplate = `Create 4 short product benefits in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON:

{
  "benefit_1": "Primary benefit with emphasis",
  "benefit_2": "Secondary benefit highlighting different angle",
  "benefit_3": "Third unique benefit",
  "benefit_4_heading": "Catchy heading",
  "benefit_4_text": "Supporting text with details"
}

Requirements:
- All values must be raw text, no HTML tags (e.g., no <p>, <strong>)
- Keep benefits concise and compelling
- Ensure benefit_4_heading is catchy and benefit_4_text provides supporting details
- Match the product's context and brand tone

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const scrollingTextsTemplate = `Generate 2 inspirational texts in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON:

{
  "text_1": "<p>First inspirational message</p>",
  "text_2": "<p>Second inspirational message with different emotional angle</p>"
}`

const videoSectionTemplate = `Create video section content in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON:

{
  "heading": "Dynamic heading capturing product essence",
  "description": "<p><strong>Engaging</strong> 2-3 sentence description</p>",
  "feature_1": "<p><strong>First feature</strong> primary benefit</p>",
  "feature_2": "<p><strong>Second feature</strong> differentiation</p>",
  "feature_3": "<p><strong>Third feature</strong> emotional benefit</p>",
  "percentage_text": "<p><strong>Performance metric</strong> specific claim</p>"
}

Requirements:
- 'heading' must be raw text, no HTML tags
- The other values must use HTML format: <p><strong>Key phrase</strong> remaining text</p>
- 'description' should be 2-3 sentences, emphasizing product benefits
- 'percentage_text' should include a specific, realistic performance claim (e.g., 90%% customer satisfaction)

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const videoHeadingTemplate = `Create a captivating video section heading in %s for %s™'s %s.

PRODUCT CONTEXT: %s

CREATIVE GUIDELINES:
- Analyze the product description and create a specific, relevant heading
- Use powerful, action-oriented language
- Vary between benefit-focused, feature-focused, and lifestyle-focused approaches

FORMAT REQUIREMENTS:
- Use **strong** tags for key emphasis words
- Keep it concise (2-6 words typically)
- Make it punchy and memorable

IMPORTANT: Return ONLY the heading text with HTML formatting, no markdown, no code blocks, no explanations.`

const philosophyHeadingTemplate = `Create a philosophy heading in %s for %s™'s %s.

PRODUCT CONTEXT: %s

Requirements:
- About crafting quality products
- Mention exceeding expectations
- Professional and inspiring tone
- 1-2 sentences maximum

IMPORTANT: Return ONLY the heading text, no markdown, no code blocks, no explanations.`

const expertTestimonialTemplate = `Create a short professional expert testimonial in %s for %s™'s %s.

PRODUCT CONTEXT: %s

EXPERT MATCHING GUIDELINES:
- Analyze the product type and match appropriate expert credentials
  (dermatologist for skincare, engineer for electronics, stylist for
  apparel, nutritionist for wellness, chef for kitchen, and so on)
- Create a realistic expert name and specific credentials

FORMAT REQUIREMENTS:
HTML format: "<p><strong>Compelling quote about product quality/results</strong></p><h6><strong>Expert Name, Specific Title/Credentials</strong></h6>"

IMPORTANT: Return ONLY the HTML testimonial, no markdown, no code blocks, no explanations.
Keep the content short and impactful.`

const finalCTAHeadingTemplate = `Create a powerful final call-to-action heading in %s for %s™'s %s.

PRODUCT CONTEXT: %s

CREATIVE REQUIREMENTS:
- Generate a unique, emotionally compelling message
- Use diverse themes: transformation, discovery, excellence, journey, empowerment
- Create urgency or aspiration without being pushy

FORMAT: Use HTML tags for emphasis, mixing <strong> and <em> for dynamic impact.

IMPORTANT: Return ONLY the heading text with HTML formatting, no markdown, no code blocks, no explanations.`

// HomePage returns the content catalog for the storefront home page.
func HomePage() Page {
	return Page{
		Name: "home",
		Translations: []Translation{
			{Source: "Exclusive Holiday Bundles", Tokens: []string{"NEW_HERO_CAPTION_TRANSLATED"}},
			{Source: "Save Up To 55%", Tokens: []string{"NEW_HERO_BUTTON_TRANSLATED"}},
			{Source: "FEATURED IN", Tokens: []string{"NEW_FEATURED_IN_TRANSLATED"}},
			{Source: "Look At How Others Are Loving Their Product!", Tokens: []string{"NEW_CUSTOMER_LOVE_HEADING_TRANSLATED"}},
			{Source: "Real Reviews From Real People", Tokens: []string{"NEW_REAL_REVIEWS_SUBHEADING_TRANSLATED"}},
			{Source: "CLAIM OFFER", Tokens: []string{"NEW_CLAIM_OFFER_BUTTON_TRANSLATED"}},
			{Source: "Lookbook", Tokens: []string{"NEW_LOOKBOOK_HEADING_TRANSLATED"}},
			{Source: "<p>Optional description for this section</p>", Tokens: []string{"NEW_LOOKBOOK_DESCRIPTION_TRANSLATED"}},
			{Source: "Heading", Tokens: []string{"NEW_LOOKBOOK_POINT_1_TITLE_TRANSLATED", "NEW_LOOKBOOK_POINT_2_TITLE_TRANSLATED"}},
			{Source: "Some optional description for this point", Tokens: []string{"NEW_LOOKBOOK_POINT_1_DESC_TRANSLATED", "NEW_LOOKBOOK_POINT_2_DESC_TRANSLATED"}},
			{Source: "View product", Tokens: []string{"NEW_VIEW_PRODUCT_BUTTON_TRANSLATED"}},
			{Source: "button", Tokens: []string{"NEW_BUTTON_TEXT_TRANSLATED"}},
			{Source: "Size Chart", Tokens: []string{"NEW_SIZE_CHART_TRANSLATED"}},
			{Source: "1 Pack", Tokens: []string{"NEW_PACK_1_LABEL_TRANSLATED"}},
			{Source: "3 Pack", Tokens: []string{"NEW_PACK_3_LABEL_TRANSLATED"}},
			{Source: "4 Pack", Tokens: []string{"NEW_PACK_4_LABEL_TRANSLATED"}},
			{Source: "5 Pack", Tokens: []string{"NEW_PACK_5_LABEL_TRANSLATED"}},
			{Source: "Offer", Tokens: []string{"NEW_OFFER_LABEL_TRANSLATED"}},
			{Source: "Most Popular", Tokens: []string{"NEW_MOST_POPULAR_TRANSLATED"}},
			{Source: "Save (%)", Tokens: []string{"NEW_SAVE_TEXT_TRANSLATED"}},
			{Source: "<p>Buy More Save More</p>", Tokens: []string{"NEW_BUY_MORE_SAVE_MORE_TRANSLATED"}},
			{Source: "<p>Limited Time Offer</p>", Tokens: []string{"NEW_LIMITED_TIME_OFFER_TRANSLATED"}},
			{Source: "OUR PRODUCT PHILOSOPHY", Tokens: []string{"NEW_PRODUCT_PHILOSOPHY_CAPTION_TRANSLATED"}},
			{Source: "Learn More", Tokens: []string{"NEW_LEARN_MORE_BUTTON_TRANSLATED"}},
			{Source: "What our customers say", Tokens: []string{"NEW_CUSTOMER_TESTIMONIALS_HEADING_TRANSLATED"}},
			{Source: "Our Story", Tokens: []string{"NEW_OUR_STORY_BUTTON_TRANSLATED"}},
		},
		Units: []Unit{
			{
				Key:   "hero_heading",
				Shape: PlainText,
				Token: "NEW_HERO_HEADING_GENERATED",
				Prompt: func(r Request) string {
					return fmt.Sprintf(heroHeadingTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "hero_subheading",
				Shape:     HTMLFragment,
				Token:     "NEW_HERO_SUBHEADING_GENERATED",
				Reference: "Save up to 55% on <strong>Text Here</strong>",
				Prompt: func(r Request) string {
					return fmt.Sprintf(heroSubheadingTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:   "rating_text",
				Shape: PlainText,
				Token: "NEW_RATING_TEXT_GENERATED",
				Prompt: func(r Request) string {
					return fmt.Sprintf(ratingTextTemplate, r.Language, r.Brand, r.Language)
				},
			},
			{
				Key:       "testimonials",
				Shape:     JSONObject,
				MaxTokens: 800,
				Fields: []Field{
					{Name: "testimonial_1.caption", Token: "NEW_TESTIMONIAL_1_CAPTION_GENERATED"},
					{Name: "testimonial_1.text", Token: "NEW_TESTIMONIAL_1_TEXT_GENERATED"},
					{Name: "testimonial_1.author", Token: "NEW_TESTIMONIAL_1_AUTHOR_GENERATED"},
					{Name: "testimonial_2.caption", Token: "NEW_TESTIMONIAL_2_CAPTION_GENERATED"},
					{Name: "testimonial_2.text", Token: "NEW_TESTIMONIAL_2_TEXT_GENERATED"},
					{Name: "testimonial_2.author", Token: "NEW_TESTIMONIAL_2_AUTHOR_GENERATED"},
					{Name: "testimonial_3.caption", Token: "NEW_TESTIMONIAL_3_CAPTION_GENERATED"},
					{Name: "testimonial_3.text", Token: "NEW_TESTIMONIAL_3_TEXT_GENERATED"},
					{Name: "testimonial_3.author", Token: "NEW_TESTIMONIAL_3_AUTHOR_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(testimonialsTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "customer_reviews",
				Shape:     JSONObject,
				MaxTokens: 800,
				Fields: []Field{
					{Name: "review_1", Token: "NEW_CUSTOMER_REVIEW_1_GENERATED"},
					{Name: "review_2", Token: "NEW_CUSTOMER_REVIEW_2_GENERATED"},
					{Name: "review_3", Token: "NEW_CUSTOMER_REVIEW_3_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(customerReviewsTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription, r.Brand, r.Brand)
				},
			},
			{
				Key:   "benefits",
				Shape: JSONObject,
				Fields: []Field{
					{Name: "benefit_1", Token: "NEW_BENEFIT_1_TEXT_GENERATED"},
					{Name: "benefit_2", Token: "NEW_BENEFIT_2_TEXT_GENERATED"},
					{Name: "benefit_3", Token: "NEW_BENEFIT_3_HEADING_GENERATED"},
					{Name: "benefit_4_heading", Token: "NEW_BENEFIT_4_HEADING_GENERATED"},
					{Name: "benefit_4_text", Token: "NEW_BENEFIT_4_TEXT_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(benefitsTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:   "scrolling_texts",
				Shape: JSONObject,
				Fields: []Field{
					{Name: "text_1", Token: "NEW_SCROLLING_TEXT_1_GENERATED"},
					{Name: "text_2", Token: "NEW_SCROLLING_TEXT_2_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(scrollingTextsTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "video_section",
				Shape:     JSONObject,
				MaxTokens: 800,
				Fields: []Field{
					{Name: "heading", Token: "NEW_BEAUTY_SERENITY_HEADING_GENERATED"},
					{Name: "description", Token: "NEW_VIDEO_SECTION_DESCRIPTION_GENERATED"},
					{Name: "feature_1", Token: "NEW_FEATURE_1_GENERATED"},
					{Name: "feature_2", Token: "NEW_FEATURE_2_GENERATED"},
					{Name: "feature_3", Token: "NEW_FEATURE_3_GENERATED"},
					{Name: "percentage_text", Token: "NEW_PERCENTAGE_TEXT_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(videoSectionTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "video_heading",
				Shape:     HTMLFragment,
				Token:     "NEW_VIDEO_HEADING_GENERATED",
				Reference: "**Transform** Your Experience",
				Prompt: func(r Request) string {
					return fmt.Sprintf(videoHeadingTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:   "philosophy_heading",
				Shape: PlainText,
				Token: "NEW_PHILOSOPHY_HEADING_GENERATED",
				Prompt: func(r Request) string {
					return fmt.Sprintf(philosophyHeadingTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "expert_testimonial",
				Shape:     HTMLFragment,
				Token:     "NEW_DOCTOR_TESTIMONIAL_GENERATED",
				Reference: "<p><strong>Compelling quote about product quality/results</strong></p><h6><strong>Expert Name, Specific Title/Credentials</strong></h6>",
				Prompt: func(r Request) string {
					return fmt.Sprintf(expertTestimonialTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "final_cta_heading",
				Shape:     HTMLFragment,
				Token:     "NEW_FINAL_CTA_HEADING_GENERATED",
				Reference: "Love <strong>Your Skin</strong>, Let Your <em>Radiance</em> Begin",
				Prompt: func(r Request) string {
					return fmt.Sprintf(finalCTAHeadingTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
		},
	}
}
