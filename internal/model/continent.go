package model

import "strings"

// Continent 大洲枚举，携带自己的展示元数据
// 避免各处用字符串硬编码判断大洲
type Continent string

const (
	ContinentEurope   Continent = "europe"
	ContinentAsia     Continent = "asia"
	ContinentAfrica   Continent = "africa"
	ContinentAmericas Continent = "americas"
	ContinentOceania  Continent = "oceania"
)

// ContinentInfo 大洲的展示元数据
// swagger:model ContinentInfo
type ContinentInfo struct {
	Code        Continent `json:"code"`
	DisplayName string    `json:"displayName"`
	Icon        string    `json:"icon"`
}

var continentInfos = map[Continent]ContinentInfo{
	ContinentEurope:   {Code: ContinentEurope, DisplayName: "Europe", Icon: "globe-europe"},
	ContinentAsia:     {Code: ContinentAsia, DisplayName: "Asia", Icon: "globe-asia"},
	ContinentAfrica:   {Code: ContinentAfrica, DisplayName: "Africa", Icon: "globe-africa"},
	ContinentAmericas: {Code: ContinentAmericas, DisplayName: "Americas", Icon: "globe-americas"},
	ContinentOceania:  {Code: ContinentOceania, DisplayName: "Oceania", Icon: "globe-oceania"},
}

// AllContinents 固定顺序，保证快照输出稳定
func AllContinents() []Continent {
	return []Continent{
		ContinentEurope,
		ContinentAsia,
		ContinentAfrica,
		ContinentAmericas,
		ContinentOceania,
	}
}

func (c Continent) Valid() bool {
	_, ok := continentInfos[c]
	return ok
}

func (c Continent) Info() ContinentInfo {
	return continentInfos[c]
}

// ParseContinent 解析大洲标识，大小写不敏感
func ParseContinent(s string) (Continent, bool) {
	c := Continent(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c, true
	}
	return "", false
}
