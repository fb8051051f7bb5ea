// Package catalog defines the fixed master product list that scraped buyback
// listings are resolved against, plus the variant disambiguation rules for
// keyword pairs shared between a DX printing and its base printing.
package catalog

import "github.com/kaitori/backend/internal/domain"

func entry(cat domain.Category, name string, retail int, keywords ...string) *domain.CatalogEntry {
	return &domain.CatalogEntry{
		Category:    cat,
		Name:        name,
		RetailPrice: retail,
		Keywords:    keywords,
		ShopPrices:  map[string]int{},
	}
}

// Master returns the canonical product list. Order matters: the matcher keeps
// the first entry to reach the best score, so more specific entries must come
// before entries they could be confused with.
func Master() *domain.Catalog {
	return domain.NewCatalog([]*domain.CatalogEntry{
		// MEGA
		entry(domain.CategoryMega, "MEGA 拡張パック「インフェルノX」", 5400, "インフェルノ", "インフェルノX", "INFERNO"),
		entry(domain.CategoryMega, "MEGA 拡張パック「メガブレイブ」", 5400, "メガブレイブ", "MEGABRAVE"),
		entry(domain.CategoryMega, "MEGA ハイクラスパック「MEGAドリームex」", 5500, "MEGAドリーム", "メガドリーム", "MEGA DREAM"),
		entry(domain.CategoryMega, "MEGA 拡張パック「メガシンフォニア」", 5400, "メガシンフォニア", "MEGASYMPHONIA"),
		entry(domain.CategoryMega, "MEGA 拡張パック「ムニキスゼロ」", 5400, "ムニキスゼロ", "ムニキス", "MUNIX"),

		// SV
		entry(domain.CategorySV, "SV 強化拡張パック「151」", 5400, "151", "ポケモンカード151"),
		entry(domain.CategorySV, "SV 拡張パック「超電ブレイカー」", 5400, "超電ブレイカー", "超電"),
		entry(domain.CategorySV, "SV 拡張パックDX「ブラックボルト」", 5800, "ブラックボルト", "BLACKVOLT", "拡張パックDXブラック"),
		entry(domain.CategorySV, "SV 拡張パックDX「ホワイトフレア」", 5800, "ホワイトフレア", "WHITEFLARE", "拡張パックDXホワイト"),
		entry(domain.CategorySV, "SV 拡張パック「ロケット団の栄光」", 5400, "ロケット団の栄光", "ロケット団", "ロケット"),
		entry(domain.CategorySV, "SV 拡張パック「ブラックボルト」", 5400, "ブラックボルト", "BLACK BOLT"),
		entry(domain.CategorySV, "SV 強化拡張パック「熱風のアリーナ」", 5400, "熱風のアリーナ", "熱風", "アリーナ"),
		entry(domain.CategorySV, "SV ハイクラスパック テラスタルフェスex", 5500, "テラスタルフェス", "テラスタル"),
		entry(domain.CategorySV, "SV 強化拡張パック「黒炎の支配者」", 5400, "黒炎の支配者", "黒炎"),
		entry(domain.CategorySV, "SV 拡張パック「ホワイトフレア」", 5400, "ホワイトフレア", "WHITE FLARE"),
		entry(domain.CategorySV, "SV 強化拡張パック「トリプレットビート」", 5400, "トリプレットビート", "トリプレット"),
		entry(domain.CategorySV, "SV 強化拡張パック「楽園ドラゴーナ」", 5400, "楽園ドラゴーナ", "ドラゴーナ"),
		entry(domain.CategorySV, "SV 拡張パック「クリムゾンヘイズ」", 5400, "クリムゾンヘイズ", "クリムゾン"),
		entry(domain.CategorySV, "SV ハイクラスパック「シャイニートレジャーex」", 5500, "シャイニートレジャー", "シャイニー"),
		entry(domain.CategorySV, "SV 拡張パック「クレイバースト」", 5400, "クレイバースト", "クレイ"),
		entry(domain.CategorySV, "SV 強化拡張パック「レイジングサーフ」", 5400, "レイジングサーフ", "レイジング"),
		entry(domain.CategorySV, "SV 拡張パック「スカーレットex」", 5400, "スカーレットex", "スカーレット"),
		entry(domain.CategorySV, "SV 拡張パック「変幻の仮面」", 5400, "変幻の仮面", "変幻"),
		entry(domain.CategorySV, "SV 拡張パック「ワイルドフォース」", 5400, "ワイルドフォース", "ワイルド"),
		entry(domain.CategorySV, "SV 強化拡張パック「スノーハザード」", 5400, "スノーハザード", "スノー"),
		entry(domain.CategorySV, "SV 拡張パック「古代の咆哮」", 5400, "古代の咆哮", "古代"),
		entry(domain.CategorySV, "SV 強化拡張パック「ステラミラクル」", 5400, "ステラミラクル", "ステラ"),
		entry(domain.CategorySV, "SV 強化拡張パック「ナイトワンダラー」", 5400, "ナイトワンダラー", "ナイト"),
		entry(domain.CategorySV, "SV 拡張パック「サイバージャッジ」", 5400, "サイバージャッジ", "サイバー"),
		entry(domain.CategorySV, "SV 拡張パック「未来の一閃」", 5400, "未来の一閃", "未来"),
		entry(domain.CategorySV, "SV 拡張パック「バイオレットex」", 5400, "バイオレットex", "バイオレット"),
		entry(domain.CategorySV, "SV 拡張パック「バトルパートナーズ」", 5400, "バトルパートナーズ", "パートナーズ"),
	})
}

// Rules returns the variant disambiguation table for the master catalog. Both
// keyword groups are shared between a DX entry and a base entry that differ
// only by the DX marker in the canonical name.
func Rules() []domain.VariantRule {
	return []domain.VariantRule{
		{Marker: "DX", Keywords: []string{"ブラックボルト", "ホワイトフレア"}},
	}
}
