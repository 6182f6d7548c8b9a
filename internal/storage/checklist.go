package storage

// 안전조치요구사항 16개 항목 — 저장된 체크맵의 키로 쓰이므로 문구 변경 금지
var SafetyItems = []string{
	"작업구역 설정(출입경고 표지)",
	"작업주위 가연성물질 제거",
	"가스농도 측정",
	"밸브차단 및 차단표지부착(도면 비교)",
	"맹판설치 및 표지부착(도면 비교)",
	"위험물질(가연성분진 포함)반출 및 처리",
	"용기개방 및 압력방출",
	"용기내부 세정 및 처리",
	"불활성가스 치환 및 환기",
	"비산물(차단막 설치)",
	"환기장비",
	"조명장비",
	"소화기",
	"안전장구",
	"안전교육",
	"운전요원의 입회",
}

// 가스저장소(밀폐작업) 측정 기준
var GasItems = []string{
	"HC: 0%",
	"O2: 18%이상",
	"CO: 30ppm미만",
	"CO2: 1.5%미만",
	"H2S: 10ppm미만",
}

// 보충작업허가 구분 순서
var SupplementaryCategories = []string{"밀폐", "정전", "굴착", "고소", "중장비"}

// 보충작업허가 구분별 체크 항목
var SupplementaryItems = map[string][]string{
	"밀폐":  {"통신수단", "구명장구"},
	"정전":  {"제어실내림", "제어실잠금", "현장내림", "현장잠금"},
	"굴착":  {"가스기계", "전기계장"},
	"고소":  {"발판난간", "안전대", "추락방지"},
	"중장비": {"자격증", "감독", "노면", "간섭", "신호수", "부속장구"},
}

// SuppCheckKey — 보충작업허가 체크박스 키 생성
// 저장된 제출건이 이 키로 기록되어 있으므로 형식 변경 금지
func SuppCheckKey(category, item string) string {
	return category + "_" + item
}

// SupplementaryKeys — 사용 중인 전체 키 목록
func SupplementaryKeys() []string {
	var keys []string
	for _, cat := range SupplementaryCategories {
		for _, item := range SupplementaryItems[cat] {
			keys = append(keys, SuppCheckKey(cat, item))
		}
	}
	return keys
}
