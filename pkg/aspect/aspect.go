// Package aspect は画像生成 API が受け付けるアスペクト比への対応付けを提供します。
package aspect

import "github.com/shouni/gemini-livery-kit/pkg/domain"

// supported は生成 API が解釈できるアスペクト比の許可リストです。
var supported = []domain.AspectRatio{
	domain.AspectSquare,
	domain.AspectPortrait2x3,
	domain.AspectLandscape3x2,
	domain.AspectPortrait3x4,
	domain.AspectLandscape4x3,
	domain.AspectPortrait,
	domain.AspectLandscape,
	domain.AspectUltrawide,
}

// apiRatios は入力値から API 向けの値への対応表です。現状はすべて恒等写像です。
var apiRatios = func() map[domain.AspectRatio]domain.AspectRatio {
	m := make(map[domain.AspectRatio]domain.AspectRatio, len(supported))
	for _, r := range supported {
		m[r] = r
	}
	return m
}()

// Resolve は要求されたアスペクト比を API 向けの値に変換します。
// 対応表にない値はエラーにせず、そのまま返します。最終的な判断は API 側に委ねます。
func Resolve(ratio domain.AspectRatio) domain.AspectRatio {
	if mapped, ok := apiRatios[ratio]; ok {
		return mapped
	}
	return ratio
}

// Supported は ratio が許可リストに含まれるかを返します。
func Supported(ratio domain.AspectRatio) bool {
	_, ok := apiRatios[ratio]
	return ok
}

// All は許可リストのコピーを返します。
func All() []domain.AspectRatio {
	out := make([]domain.AspectRatio, len(supported))
	copy(out, supported)
	return out
}
