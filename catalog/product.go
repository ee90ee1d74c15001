package catalog

import "fmt"

const announcementsTemplate = `Create announcement contents in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON with ALL specified keys:

{
  "announcement_91817b81": "<h1>Announcement text</h1>",
  "announcement_gAyVVz": "<p>Announcement text</p>",
  "announcement_XGt7RJ": "<p>Announcement text</p>",
  "announcement_dd77f8e0": "<h1>Announcement text</h1>",
  "announcement_template_1": "<p>Announcement text</p>",
  "announcement_template_2": "<p>Announcement text</p>"
}

Requirements:
- Maintain exact HTML tags: <h1> for announcement_91817b81 and announcement_dd77f8e0, <p> for others
- Keep texts short (3-8 words), impactful, and product-relevant
- Focus on promotions, eco-friendly aspects, or product benefits
- Match brand tone and product context
- Ensure ALL keys above are included with valid values

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const buttonTextsTemplate = `Create button text contents in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON with ALL specified keys:

{
  "image_4GCwJt": "Button text",
  "image_6kyG4n": "Button text",
  "image_8WUeHF": "Button text",
  "image_g6WCgH": "Button text",
  "image_mczRTQ": "Button text",
  "image_mWKfnL": "Button text",
  "image_XDdFEp": "Button text",
  "image_YQMGF7": "Button text",
  "image_template_1": "Button text",
  "text_j7Dft4": "Button text"
}

Requirements:
- All values must be raw text, no HTML tags
- Keep texts short (2-5 words), action-oriented (e.g., "Shop Now", "Discover More")
- Match brand tone and product context
- For text_j7Dft4, include a hashtag (e.g., "#BrandName")
- Ensure ALL keys above are included with valid values

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const contentSectionsTemplate = `Create content sections in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON with ALL specified keys:

{
  "content_9ccffc8d": "<p>Shipping details</p><p><a href='/collections/all' title='All products'>Link text</a></p><p>Sale policy</p>",
  "content_f34ad5c4": "<p>Shipping details</p><p><a href='/collections/all' title='All products'>Link text</a></p><p>Sale policy</p>",
  "content_promo_krqbTU": "<p>Promo text</p>",
  "content_promo_QC7Vbj": "<p>Promo text</p>",
  "content_collapsible_tab_HK7dGX": "<ul><li>Ingredient</li><li>Ingredient</li><li>Ingredient</li></ul>",
  "row_content_BMHKaN": "<p>FAQ response</p>",
  "row_content_GiDN9z": "<p>FAQ response</p>",
  "row_content_t3yhUa": "<p>FAQ response</p>",
  "row_content_template_1": "<p>FAQ response</p>",
  "row_content_template_2": "<p>FAQ response</p>",
  "row_content_template_3": "<p>FAQ response</p>",
  "row_content_template_4": "<p>FAQ response</p>",
  "tab_content_DgkJ3j": "<p>Tab description</p>",
  "tab_content_2_DgkJ3j": "<p>Tab description</p>",
  "tab_content_3_DgkJ3j": "<p>Tab description</p>"
}

Requirements:
- Maintain exact HTML structure as shown (e.g., <p>, <a>, <ul><li>)
- Use single quotes for HTML attributes (e.g., href='/collections/all')
- Keep texts concise, relevant to product (e.g., shipping, returns, ingredients, FAQs)
- For content_9ccffc8d and content_f34ad5c4, include 3 paragraphs with a link in the second
- For content_collapsible_tab_HK7dGX, list 3-5 ingredients in <ul><li> format
- Match brand tone and product context
- Ensure ALL keys above are included with valid values

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const reviewContentTemplate = `Create review content in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON with ALL specified keys:

{
  "review_text_13a5819e": "<p>Review text</p>",
  "review_text_30900101": "<p>Review text</p>",
  "review_text_3c322c1a": "<p>Review text</p>",
  "review_text_53a5b896": "<p>Review text</p>",
  "review_text_d032a47c": "<p>Review text</p>",
  "review_text_e3288062": "<p>Review text</p>",
  "review_text_f57735f1": "<p>Review text</p>",
  "review_text_ArWHqK": "<p>Review text</p>",
  "review_text_fwxHPq": "<p>Review text</p>",
  "review_text_kAgTR4": "<p>Review text</p>",
  "rating_count_3475a8f9": "<strong>Number</strong> Real reviews, real results from <strong>people just like you.</strong>",
  "lrw_text_7f391028": "Rating | Reviews"
}

Requirements:
- Review texts must use <p> tags, 1-3 sentences, positive and product-specific
- rating_count_3475a8f9 must use <strong> tags for number and phrase
- lrw_text_7f391028 must be raw text, format: "X.Y | Z Reviews"
- Match brand tone and product context
- Ensure ALL keys above are included with valid values

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const quantitySelectorTemplate = `Create quantity selector content in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON with ALL specified keys:

{
  "option_1_save_text": "Save text",
  "option_1_unit_label": "Unit label",
  "option_2_save_text": "Save text",
  "option_2_unit_label": "Unit label",
  "option_3_promo": "<strong>Duration</strong> Months Supply | <strong>FREE Shipping</strong>",
  "option_3_save_text": "Save text",
  "option_3_unit_label": "Unit label",
  "option_4_save_text": "Save text",
  "option_4_unit_label": "Unit label",
  "option_5_save_text": "Save text",
  "option_5_unit_label": "Unit label",
  "option_6_save_text": "Save text",
  "option_6_unit_label": "Unit label",
  "quantity_title_text": "<h3>Bundle text</h3>"
}

Requirements:
- Save texts and unit labels are raw text, concise (e.g., "Save 10%%", "2 Months Supply")
- option_3_promo uses <strong> tags as shown
- quantity_title_text uses <h3> tags
- Match product context (e.g., drone accessories or bundles)
- Reflect escalating bundle benefits (e.g., more savings for larger packs)
- Ensure ALL keys above are included with valid values

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

const textSectionsTemplate = `Create text section content in %s for %s™'s %s.

PRODUCT: %s

Return ONLY valid JSON with ALL specified keys:

{
  "head_text_lumin_hero_8jr4ii": "Hero headline text",
  "subtitle_text_j7Dft4": "<p><strong>Number FOLLOWERS</strong></p>",
  "text_1_hero_Wjwazn": "Descriptive text",
  "text_2_hero_Wjwazn": "Descriptive text",
  "text_3_hero_Wjwazn": "Descriptive text",
  "text_4_hero_Wjwazn": "Descriptive text",
  "text_5_hero_Wjwazn": "Descriptive text",
  "text_6_hero_Wjwazn": "Descriptive text",
  "text_264e37ac": "Order by timer for fast delivery",
  "text_504c9e09": "<p>Review text</p><h6>Policy</h6>",
  "text_74e17b96": "Vendor text",
  "text_promo_slide_YiPa48_1": "<p>Promo text</p>",
  "text_promo_slide_YiPa48_2": "<p>Promo text</p>",
  "text_promo_slide_YiPa48_3": "<p>Promo text</p>",
  "text_column_7zMkCE": "<p>Testimonial text – <strong>Name</strong></p>",
  "text_column_9PFUYj": "<p><em>Testimonial text</em> – <strong>Name</strong></p>",
  "text_column_htTYfJ": "<p><em>Testimonial text</em> – <strong>Name</strong></p>",
  "text_column_xLTnh7": "<p><em>Testimonial text</em> – <strong>Name</strong></p>",
  "text_column_afLRa6": "<h1><strong>Percentage</strong></h1><p>Benefit description</p>",
  "text_column_FpEWjD": "<h1><strong>Percentage</strong></h1><p>Benefit description</p>",
  "text_column_kcUK3B": "<h1><strong>Percentage</strong></h1><p>Benefit description</p>",
  "text_column_nMFyQP": "<h1><strong>Percentage</strong></h1><p>Benefit description</p>",
  "text_comparison_table_9j8NnQ": "<p>Comparison text</p>",
  "text_feature_6cxT6B": "<p>Feature with <strong>highlight</strong></p>",
  "text_feature_aYFzam": "<p>Feature with <strong>highlight</strong></p>",
  "text_feature_HCBWrx": "<p>Feature with <strong>highlight</strong></p>",
  "text_feature_Kgr9Aj": "<p>Feature with <strong>highlight</strong></p>",
  "text_feature_teRTgW": "<p>Feature with <strong>highlight</strong></p>",
  "text_text_T999BU": "<p>✔️ <strong>Benefit</strong> – Description<br/><br/>✔️ <strong>Benefit</strong> – Description</p>",
  "text_text_VYmMN6": "<p>Tagline</p>",
  "text_text_wFDAYF": "<p>Descriptive text</p>",
  "text_popup_DVDmRD": "Link text",
  "text_low_many_xPXzfP": "Stock alert",
  "text_low_one_xPXzfP": "Stock alert",
  "text_normal_xPXzfP": "Stock status",
  "text_soldout_xPXzfP": "Sold out notice",
  "text_untracked_xPXzfP": "Stock status"
}

Requirements:
- Use raw text (no HTML) for head_text_lumin_hero_8jr4ii, text_1_hero_Wjwazn to text_6_hero_Wjwazn, text_264e37ac, text_74e17b96, text_popup_DVDmRD, stock-related texts
- Maintain exact HTML structure where specified
- Texts should be concise, product-relevant (e.g., benefits, testimonials, stock alerts)
- For columns (7zMkCE, 9PFUYj, htTYfJ, xLTnh7), include customer name in <strong>
- For columns (afLRa6, FpEWjD, kcUK3B, nMFyQP), use percentage (60-95%%) and benefit
- Match brand tone and product context
- Ensure ALL keys above are included with valid values

IMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.`

// ProductPage returns the content catalog for the product page, the
// largest of the three. Its tokens carry the theme's literal section
// ids, which is why the names read like identifiers rather than prose.
func ProductPage() Page {
	return Page{
		Name: "product",
		Translations: []Translation{
			{Source: "Pairs well with", Tokens: []string{"NEW_BLOCK_HEADING_006E6C29_717A_4F58_8FEA_CABC7DA6316F_TRANSLATED"}},
			{Source: "Shop Collection", Tokens: []string{"NEW_BUTTON_LABEL_BUTTON_MHN8PC_TRANSLATED"}},
			{Source: "July 2023", Tokens: []string{
				"NEW_DATE_TEXT_13A5819E_5698_472F_94EB_34D5A7AD9B21_TRANSLATED",
				"NEW_DATE_TEXT_3C322C1A_1E3A_47E6_8D7B_720D506EB595_TRANSLATED",
				"NEW_DATE_TEXT_53A5B896_0517_4E05_80FE_B23DE703E79B_TRANSLATED",
				"NEW_DATE_TEXT_E3288062_4139_4942_8A82_452BFEBBD63F_TRANSLATED",
				"NEW_DATE_TEXT_REVIEW_ARWHQK_TRANSLATED",
				"NEW_DATE_TEXT_REVIEW_FWXHPQ_TRANSLATED",
				"NEW_DATE_TEXT_REVIEW_KAGTR4_TRANSLATED",
			}},
			{Source: "Jan 2024", Tokens: []string{"NEW_DATE_TEXT_30900101_E5C8_4C0E_B5BD_0FCF8EEA85CF_TRANSLATED"}},
			{Source: "Dec 2023", Tokens: []string{"NEW_DATE_TEXT_D032A47C_6F6E_4A8E_94B9_D1260A5D6B0D_TRANSLATED"}},
			{Source: "Jan 2023", Tokens: []string{"NEW_DATE_TEXT_F57735F1_30A6_4538_8C95_BFE08674506B_TRANSLATED"}},
			{Source: "(x) People are looking at this", Tokens: []string{"NEW_FOMO_TEXT_BEFORE_4EC31670_952B_4ED4_8799_249844A8F39B_TRANSLATED"}},
			{Source: "Rated the #1 drone technology in 2025.", Tokens: []string{"NEW_HEADER_TEXT_3475A8F9_021F_4ACD_8E57_163EF2A26740_TRANSLATED"}},
			{Source: "100% Money <strong>Back</strong>!!", Tokens: []string{"NEW_HEADING_504C9E09_AAA7_49C4_8271_C6CA319D23F2_TRANSLATED"}},
			{Source: "Shipping Information", Tokens: []string{"NEW_HEADING_9CCFFC8D_E4C7_404F_8007_8C5162F22285_TRANSLATED"}},
			{Source: "FAQs", Tokens: []string{"NEW_HEADING_C0EF23CF_5481_4B47_9B78_3C28134C079A_TRANSLATED"}},
			{Source: "Is everything recyclable?", Tokens: []string{"NEW_HEADING_COLLAPSIBLE_ROW_BMHKAN_TRANSLATED"}},
			{Source: "How often should you use?", Tokens: []string{"NEW_HEADING_COLLAPSIBLE_ROW_GIDN9Z_TRANSLATED"}},
			{Source: "Does this really work?", Tokens: []string{"NEW_HEADING_COLLAPSIBLE_ROW_T3YHUA_TRANSLATED"}},
			{Source: "Ingredient list", Tokens: []string{"NEW_HEADING_COLLAPSIBLE_TAB_HK7DGX_TRANSLATED"}},
			{Source: "Returns & Refunds", Tokens: []string{"NEW_HEADING_F34AD5C4_50A9_4A95_A561_D8C51D1B76DD_TRANSLATED"}},
			{Source: "<strong>Experience Stealth with AeroShadow X1</strong>", Tokens: []string{"NEW_HEADING_HEADING_8E7QYA_TRANSLATED"}},
			{Source: "<strong>Precision Drone Technology</strong>", Tokens: []string{"NEW_HEADING_HEADING_AJMG6N_TRANSLATED"}},
			{Source: "<strong>Fly Beyond Limits.</strong>", Tokens: []string{"NEW_HEADING_HEADING_JHTCQY_TRANSLATED"}},
			{Source: "You may also like", Tokens: []string{"NEW_HEADING_RELATED-PRODUCTS_TRANSLATED"}},
			{Source: "What if it doesn’t work for me?", Tokens: []string{"NEW_HEADING_TEMPLATE__15124688076883__C0EF23CF_5481_4B47_9B78_3C28134C079A_COLLAPSIBLE_ROW_1_TRANSLATED"}},
			{Source: "Guarantee?", Tokens: []string{"NEW_HEADING_TEMPLATE__15124688076883__C0EF23CF_5481_4B47_9B78_3C28134C079A_COLLAPSIBLE_ROW_2_TRANSLATED"}},
			{Source: "Okay, but why have I never heard of this before?", Tokens: []string{"NEW_HEADING_TEMPLATE__15124688076883__C0EF23CF_5481_4B47_9B78_3C28134C079A_COLLAPSIBLE_ROW_3_TRANSLATED"}},
			{Source: "Do you provide tracking information?", Tokens: []string{"NEW_HEADING_TEMPLATE__15124688076883__C0EF23CF_5481_4B47_9B78_3C28134C079A_COLLAPSIBLE_ROW_4_TRANSLATED"}},
			{Source: "Johan D.", Tokens: []string{
				"NEW_NAME_TEXT_13A5819E_5698_472F_94EB_34D5A7AD9B21_TRANSLATED",
				"NEW_NAME_TEXT_3C322C1A_1E3A_47E6_8D7B_720D506EB595_TRANSLATED",
				"NEW_NAME_TEXT_E3288062_4139_4942_8A82_452BFEBBD63F_TRANSLATED",
				"NEW_NAME_TEXT_REVIEW_ARWHQK_TRANSLATED",
				"NEW_NAME_TEXT_REVIEW_FWXHPQ_TRANSLATED",
				"NEW_NAME_TEXT_REVIEW_KAGTR4_TRANSLATED",
			}},
			{Source: "Sofia R.", Tokens: []string{"NEW_NAME_TEXT_30900101_E5C8_4C0E_B5BD_0FCF8EEA85CF_TRANSLATED"}},
			{Source: "Amy Grady, B.", Tokens: []string{"NEW_NAME_TEXT_53A5B896_0517_4E05_80FE_B23DE703E79B_TRANSLATED"}},
			{Source: "Anabella C.", Tokens: []string{"NEW_NAME_TEXT_D032A47C_6F6E_4A8E_94B9_D1260A5D6B0D_TRANSLATED"}},
			{Source: "Vera R.", Tokens: []string{"NEW_NAME_TEXT_F57735F1_30A6_4538_8C95_BFE08674506B_TRANSLATED"}},
			{Source: "Most Popular", Tokens: []string{
				"NEW_OPTION_1_BADGE_TEXT_QUANTITY_SELECTOR_Q9D74M_TRANSLATED",
				"NEW_OPTION_4_BADGE_TEXT_QUANTITY_SELECTOR_Q9D74M_TRANSLATED",
				"NEW_OPTION_5_BADGE_TEXT_QUANTITY_SELECTOR_Q9D74M_TRANSLATED",
				"NEW_OPTION_6_BADGE_TEXT_QUANTITY_SELECTOR_Q9D74M_TRANSLATED",
			}},
			{Source: "1 Drone", Tokens: []string{"NEW_OPTION_1_LABEL_QUANTITY_SELECTOR_Q9D74M_TRANSLATED"}},
			{Source: "SPECIAL OFFER - Limited Time", Tokens: []string{"NEW_OPTION_2_BADGE_TEXT_QUANTITY_SELECTOR_Q9D74M_TRANSLATED"}},
			{Source: "Buy 2, Get 1 FREE", Tokens: []string{"NEW_OPTION_2_LABEL_QUANTITY_SELECTOR_Q9D74M_TRANSLATED"}},
			{Source: "FLASH SALE — Grab It Before It's Gone", Tokens: []string{"NEW_OPTION_3_BADGE_TEXT_QUANTITY_SELECTOR_Q9D74M_TRANSLATED"}},
			{Source: "Buy 3, Get 2 FREE", Tokens: []string{"NEW_OPTION_3_LABEL_QUANTITY_SELECTOR_Q9D74M_TRANSLATED"}},
			{Source: "4 Drones", Tokens: []string{"NEW_OPTION_4_LABEL_QUANTITY_SELECTOR_Q9D74M_TRANSLATED"}},
			{Source: "5 Drones", Tokens: []string{"NEW_OPTION_5_LABEL_QUANTITY_SELECTOR_Q9D74M_TRANSLATED"}},
			{Source: "6 Drones", Tokens: []string{"NEW_OPTION_6_LABEL_QUANTITY_SELECTOR_Q9D74M_TRANSLATED"}},
			{Source: "Nice Product", Tokens: []string{
				"NEW_REVIEW_HEAD_13A5819E_5698_472F_94EB_34D5A7AD9B21_TRANSLATED",
				"NEW_REVIEW_HEAD_3C322C1A_1E3A_47E6_8D7B_720D506EB595_TRANSLATED",
				"NEW_REVIEW_HEAD_E3288062_4139_4942_8A82_452BFEBBD63F_TRANSLATED",
				"NEW_REVIEW_HEAD_REVIEW_ARWHQK_TRANSLATED",
				"NEW_REVIEW_HEAD_REVIEW_FWXHPQ_TRANSLATED",
				"NEW_REVIEW_HEAD_REVIEW_KAGTR4_TRANSLATED",
			}},
			{Source: "Works well for advanced flights!", Tokens: []string{"NEW_REVIEW_HEAD_30900101_E5C8_4C0E_B5BD_0FCF8EEA85CF_TRANSLATED"}},
			{Source: "The Only Drone That Has Worked For Me", Tokens: []string{"NEW_REVIEW_HEAD_53A5B896_0517_4E05_80FE_B23DE703E79B_TRANSLATED"}},
			{Source: "Holy Unexpected!!", Tokens: []string{"NEW_REVIEW_HEAD_D032A47C_6F6E_4A8E_94B9_D1260A5D6B0D_TRANSLATED"}},
			{Source: "BEST PURCHASE BEST FIND", Tokens: []string{"NEW_REVIEW_HEAD_F57735F1_30A6_4538_8C95_BFE08674506B_TRANSLATED"}},
			{Source: "✨ <strong>Obsessed with the Results</strong>", Tokens: []string{"NEW_TITLE_COLUMN_7ZMKCE_TRANSLATED"}},
			{Source: "⚡ <strong>Visible Results, Fast</strong>", Tokens: []string{"NEW_TITLE_COLUMN_9PFUYJ_TRANSLATED"}},
			{Source: "💖 <strong>Worth Every Penny</strong>", Tokens: []string{"NEW_TITLE_COLUMN_HTTYFJ_TRANSLATED"}},
			{Source: "🌿 <strong>Advanced Drone Technology</strong>", Tokens: []string{"NEW_TITLE_COLUMN_XLTNH7_TRANSLATED"}},
			{Source: "What makes AeroShadow right for you?", Tokens: []string{"NEW_TITLE_COMPARISON_TABLE_9J8NNQ_TRANSLATED"}},
			{Source: "Why AeroShadow is <strong>Better</strong>", Tokens: []string{"NEW_TITLE_LUMIN_HERO_8JR4II_TRANSLATED"}},
			{Source: "Drone Tech for the Best Flights Yet", Tokens: []string{"NEW_TITLE_MULTICOLUMN_XDHHWC_TRANSLATED"}},
			{Source: "Was this helpful?", Tokens: []string{"NEW_LIKE_TEXT_3475A8F9_021F_4ACD_8E57_163EF2A26740_TRANSLATED"}},
			{Source: "Load More", Tokens: []string{"NEW_LOAD_TEXT_3475A8F9_021F_4ACD_8E57_163EF2A26740_TRANSLATED"}},
			{Source: "Verified Buyer", Tokens: []string{"NEW_VERIFY_TEXT_3475A8F9_021F_4ACD_8E57_163EF2A26740_TRANSLATED"}},
			// The theme labels this one _GENERATED even though it goes
			// through the translation path.
			{Source: "SkyForge Tech", Tokens: []string{"NEW_HEAD_TEXT_J7DFT4_GENERATED"}},
		},
		Units: []Unit{
			{
				Key:       "announcements",
				Shape:     JSONObject,
				Reference: "<h1>Text</h1>",
				MaxTokens: 500,
				Fields: []Field{
					{Name: "announcement_91817b81", Token: "NEW_ANNOUNCEMENT_91817B81_C148_4C6C_8A35_09D6BA380CA5_GENERATED"},
					{Name: "announcement_gAyVVz", Token: "NEW_ANNOUNCEMENT_ANNOUNCEMENT_GAYVVZ_GENERATED"},
					{Name: "announcement_XGt7RJ", Token: "NEW_ANNOUNCEMENT_ANNOUNCEMENT_XGT7RJ_GENERATED"},
					{Name: "announcement_dd77f8e0", Token: "NEW_ANNOUNCEMENT_DD77F8E0_9A10_41D6_A2A8_69B2326223A3_GENERATED"},
					{Name: "announcement_template_1", Token: "NEW_ANNOUNCEMENT_TEMPLATE__15124688076883__05F459A6_0335_4BAB_8D23_AC347077EFCC_ANNOUNCEMENT_1_GENERATED"},
					{Name: "announcement_template_2", Token: "NEW_ANNOUNCEMENT_TEMPLATE__15124688076883__05F459A6_0335_4BAB_8D23_AC347077EFCC_ANNOUNCEMENT_2_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(announcementsTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "button_texts",
				Shape:     JSONObject,
				MaxTokens: 300,
				Fields: []Field{
					{Name: "image_4GCwJt", Token: "NEW_BUTTON-TEXT_IMAGE_4GCWJT_GENERATED"},
					{Name: "image_6kyG4n", Token: "NEW_BUTTON-TEXT_IMAGE_6KYG4N_GENERATED"},
					{Name: "image_8WUeHF", Token: "NEW_BUTTON-TEXT_IMAGE_8WUEHF_GENERATED"},
					{Name: "image_g6WCgH", Token: "NEW_BUTTON-TEXT_IMAGE_G6WCGH_GENERATED"},
					{Name: "image_mczRTQ", Token: "NEW_BUTTON-TEXT_IMAGE_MCZRTQ_GENERATED"},
					{Name: "image_mWKfnL", Token: "NEW_BUTTON-TEXT_IMAGE_MWKFNL_GENERATED"},
					{Name: "image_XDdFEp", Token: "NEW_BUTTON-TEXT_IMAGE_XDDFEP_GENERATED"},
					{Name: "image_YQMGF7", Token: "NEW_BUTTON-TEXT_IMAGE_YQMGF7_GENERATED"},
					{Name: "image_template_1", Token: "NEW_BUTTON-TEXT_TEMPLATE__17146523746516__530954A1_091E_46FD_B6F9_AAAACA76CEB6_IMAGE_1_GENERATED"},
					{Name: "text_j7Dft4", Token: "NEW_BUTTON-TEXT_TEXT_J7DFT4_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(buttonTextsTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "content_sections",
				Shape:     JSONObject,
				Reference: "<p>Text</p>",
				MaxTokens: 1000,
				Fields: []Field{
					{Name: "content_9ccffc8d", Token: "NEW_CONTENT_9CCFFC8D_E4C7_404F_8007_8C5162F22285_GENERATED"},
					{Name: "content_f34ad5c4", Token: "NEW_CONTENT_F34AD5C4_50A9_4A95_A561_D8C51D1B76DD_GENERATED"},
					{Name: "content_promo_krqbTU", Token: "NEW_CONTENT_PROMO_KRQBTU_GENERATED"},
					{Name: "content_promo_QC7Vbj", Token: "NEW_CONTENT_PROMO_QC7VBJ_GENERATED"},
					{Name: "content_collapsible_tab_HK7dGX", Token: "NEW_CONTENT_COLLAPSIBLE_TAB_HK7DGX_GENERATED"},
					{Name: "row_content_BMHKaN", Token: "NEW_ROW_CONTENT_COLLAPSIBLE_ROW_BMHKAN_GENERATED"},
					{Name: "row_content_GiDN9z", Token: "NEW_ROW_CONTENT_COLLAPSIBLE_ROW_GIDN9Z_GENERATED"},
					{Name: "row_content_t3yhUa", Token: "NEW_ROW_CONTENT_COLLAPSIBLE_ROW_T3YHUA_GENERATED"},
					{Name: "row_content_template_1", Token: "NEW_ROW_CONTENT_TEMPLATE__15124688076883__C0EF23CF_5481_4B47_9B78_3C28134C079A_COLLAPSIBLE_ROW_1_GENERATED"},
					{Name: "row_content_template_2", Token: "NEW_ROW_CONTENT_TEMPLATE__15124688076883__C0EF23CF_5481_4B47_9B78_3C28134C079A_COLLAPSIBLE_ROW_2_GENERATED"},
					{Name: "row_content_template_3", Token: "NEW_ROW_CONTENT_TEMPLATE__15124688076883__C0EF23CF_5481_4B47_9B78_3C28134C079A_COLLAPSIBLE_ROW_3_GENERATED"},
					{Name: "row_content_template_4", Token: "NEW_ROW_CONTENT_TEMPLATE__15124688076883__C0EF23CF_5481_4B47_9B78_3C28134C079A_COLLAPSIBLE_ROW_4_GENERATED"},
					{Name: "tab_content_DgkJ3j", Token: "NEW_TAB_CONTENT_TABS_DGKJ3J_GENERATED"},
					{Name: "tab_content_2_DgkJ3j", Token: "NEW_TAB_CONTENT_2_TABS_DGKJ3J_GENERATED"},
					{Name: "tab_content_3_DgkJ3j", Token: "NEW_TAB_CONTENT_3_TABS_DGKJ3J_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(contentSectionsTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "review_content",
				Shape:     JSONObject,
				Reference: "<p>Text</p>",
				MaxTokens: 600,
				Fields: []Field{
					{Name: "review_text_13a5819e", Token: "NEW_REVIEW_TEXT_13A5819E_5698_472F_94EB_34D5A7AD9B21_GENERATED"},
					{Name: "review_text_30900101", Token: "NEW_REVIEW_TEXT_30900101_E5C8_4C0E_B5BD_0FCF8EEA85CF_GENERATED"},
					{Name: "review_text_3c322c1a", Token: "NEW_REVIEW_TEXT_3C322C1A_1E3A_47E6_8D7B_720D506EB595_GENERATED"},
					{Name: "review_text_53a5b896", Token: "NEW_REVIEW_TEXT_53A5B896_0517_4E05_80FE_B23DE703E79B_GENERATED"},
					{Name: "review_text_d032a47c", Token: "NEW_REVIEW_TEXT_D032A47C_6F6E_4A8E_94B9_D1260A5D6B0D_GENERATED"},
					{Name: "review_text_e3288062", Token: "NEW_REVIEW_TEXT_E3288062_4139_4942_8A82_452BFEBBD63F_GENERATED"},
					{Name: "review_text_f57735f1", Token: "NEW_REVIEW_TEXT_F57735F1_30A6_4538_8C95_BFE08674506B_GENERATED"},
					{Name: "review_text_ArWHqK", Token: "NEW_REVIEW_TEXT_REVIEW_ARWHQK_GENERATED"},
					{Name: "review_text_fwxHPq", Token: "NEW_REVIEW_TEXT_REVIEW_FWXHPQ_GENERATED"},
					{Name: "review_text_kAgTR4", Token: "NEW_REVIEW_TEXT_REVIEW_KAGTR4_GENERATED"},
					{Name: "rating_count_3475a8f9", Token: "NEW_RATING_COUNT_3475A8F9_021F_4ACD_8E57_163EF2A26740_GENERATED"},
					{Name: "lrw_text_7f391028", Token: "NEW_LRW_TEXT_7F391028_A103_4E66_BB50_BD71D4672AF4_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(reviewContentTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "quantity_selector",
				Shape:     JSONObject,
				Reference: "<h3>Text</h3>",
				MaxTokens: 400,
				Fields: []Field{
					{Name: "option_1_save_text", Token: "NEW_OPTION_1_SAVE_TEXT_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_1_unit_label", Token: "NEW_OPTION_1_UNIT_LABEL_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_2_save_text", Token: "NEW_OPTION_2_SAVE_TEXT_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_2_unit_label", Token: "NEW_OPTION_2_UNIT_LABEL_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_3_promo", Token: "NEW_OPTION_3_PROMO_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_3_save_text", Token: "NEW_OPTION_3_SAVE_TEXT_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_3_unit_label", Token: "NEW_OPTION_3_UNIT_LABEL_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_4_save_text", Token: "NEW_OPTION_4_SAVE_TEXT_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_4_unit_label", Token: "NEW_OPTION_4_UNIT_LABEL_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_5_save_text", Token: "NEW_OPTION_5_SAVE_TEXT_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_5_unit_label", Token: "NEW_OPTION_5_UNIT_LABEL_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_6_save_text", Token: "NEW_OPTION_6_SAVE_TEXT_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "option_6_unit_label", Token: "NEW_OPTION_6_UNIT_LABEL_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
					{Name: "quantity_title_text", Token: "NEW_QUANTITY_TITLE_TEXT_QUANTITY_SELECTOR_Q9D74M_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(quantitySelectorTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
			{
				Key:       "text_sections",
				Shape:     JSONObject,
				Reference: "<p>Text</p>",
				MaxTokens: 1500,
				Fields: []Field{
					{Name: "head_text_lumin_hero_8jr4ii", Token: "NEW_HEAD_TEXT_LUMIN_HERO_8JR4II_GENERATED"},
					{Name: "subtitle_text_j7Dft4", Token: "NEW_SUBTITLE_TEXT_J7DFT4_GENERATED"},
					{Name: "text_1_hero_Wjwazn", Token: "NEW_TEXT_1_HERO_WJWAZN_GENERATED"},
					{Name: "text_2_hero_Wjwazn", Token: "NEW_TEXT_2_HERO_WJWAZN_GENERATED"},
					{Name: "text_3_hero_Wjwazn", Token: "NEW_TEXT_3_HERO_WJWAZN_GENERATED"},
					{Name: "text_4_hero_Wjwazn", Token: "NEW_TEXT_4_HERO_WJWAZN_GENERATED"},
					{Name: "text_5_hero_Wjwazn", Token: "NEW_TEXT_5_HERO_WJWAZN_GENERATED"},
					{Name: "text_6_hero_Wjwazn", Token: "NEW_TEXT_6_HERO_WJWAZN_GENERATED"},
					{Name: "text_264e37ac", Token: "NEW_TEXT_264E37AC_8AC8_475C_9F10_973D46BB217D_GENERATED"},
					{Name: "text_504c9e09", Token: "NEW_TEXT_504C9E09_AAA7_49C4_8271_C6CA319D23F2_GENERATED"},
					{Name: "text_74e17b96", Token: "NEW_TEXT_74E17B96_75E8_4EC7_AE08_2DF77F4249CB_GENERATED"},
					{Name: "text_promo_slide_YiPa48_1", Token: "NEW_TEXT_1_PROMO_SLIDE_YIPA48_GENERATED"},
					{Name: "text_promo_slide_YiPa48_2", Token: "NEW_TEXT_2_PROMO_SLIDE_YIPA48_GENERATED"},
					{Name: "text_promo_slide_YiPa48_3", Token: "NEW_TEXT_3_PROMO_SLIDE_YIPA48_GENERATED"},
					{Name: "text_column_7zMkCE", Token: "NEW_TEXT_COLUMN_7ZMKCE_GENERATED"},
					{Name: "text_column_9PFUYj", Token: "NEW_TEXT_COLUMN_9PFUYJ_GENERATED"},
					{Name: "text_column_htTYfJ", Token: "NEW_TEXT_COLUMN_HTTYFJ_GENERATED"},
					{Name: "text_column_xLTnh7", Token: "NEW_TEXT_COLUMN_XLTNH7_GENERATED"},
					{Name: "text_column_afLRa6", Token: "NEW_TEXT_COLUMN_AFLRA6_GENERATED"},
					{Name: "text_column_FpEWjD", Token: "NEW_TEXT_COLUMN_FPEWJD_GENERATED"},
					{Name: "text_column_kcUK3B", Token: "NEW_TEXT_COLUMN_KCUK3B_GENERATED"},
					{Name: "text_column_nMFyQP", Token: "NEW_TEXT_COLUMN_NMFYQP_GENERATED"},
					{Name: "text_comparison_table_9j8NnQ", Token: "NEW_TEXT_COMPARISON_TABLE_9J8NNQ_GENERATED"},
					{Name: "text_feature_6cxT6B", Token: "NEW_TEXT_FEATURE_6CXT6B_GENERATED"},
					{Name: "text_feature_aYFzam", Token: "NEW_TEXT_FEATURE_AYFZAM_GENERATED"},
					{Name: "text_feature_HCBWrx", Token: "NEW_TEXT_FEATURE_HCBWRX_GENERATED"},
					{Name: "text_feature_Kgr9Aj", Token: "NEW_TEXT_FEATURE_KGR9AJ_GENERATED"},
					{Name: "text_feature_teRTgW", Token: "NEW_TEXT_FEATURE_TERTGW_GENERATED"},
					{Name: "text_text_T999BU", Token: "NEW_TEXT_TEXT_T999BU_GENERATED"},
					{Name: "text_text_VYmMN6", Token: "NEW_TEXT_TEXT_VYMMN6_GENERATED"},
					{Name: "text_text_wFDAYF", Token: "NEW_TEXT_TEXT_WFDAYF_GENERATED"},
					{Name: "text_popup_DVDmRD", Token: "NEW_TEXT_POPUP_DVDMRD_GENERATED"},
					{Name: "text_low_many_xPXzfP", Token: "NEW_TEXT_LOW_MANY_INVENTORY_XPXZFP_GENERATED"},
					{Name: "text_low_one_xPXzfP", Token: "NEW_TEXT_LOW_ONE_INVENTORY_XPXZFP_GENERATED"},
					{Name: "text_normal_xPXzfP", Token: "NEW_TEXT_NORMAL_INVENTORY_XPXZFP_GENERATED"},
					{Name: "text_soldout_xPXzfP", Token: "NEW_TEXT_SOLDOUT_INVENTORY_XPXZFP_GENERATED"},
					{Name: "text_untracked_xPXzfP", Token: "NEW_TEXT_UNTRACKED_INVENTORY_XPXZFP_GENERATED"},
				},
				Prompt: func(r Request) string {
					return fmt.Sprintf(textSectionsTemplate, r.Language, r.Brand, r.ProductTitle, r.ProductDescription)
				},
			},
		},
	}
}
