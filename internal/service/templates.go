package service

// SampleTemplates is the fixed seed corpus for template similarity search:
// approved AlrimTalk templates covering a price change notice, a visit
// reservation confirmation, and an event invitation.
func SampleTemplates() []string {
	return []string{
		`[가격 변경 안내]

안녕하세요, #{수신자명}님.
#{서비스명} 서비스 가격 변경을 안내드립니다.

▶ 변경 적용일: #{적용일}
▶ 기존 가격: #{기존가격}원
▶ 변경 가격: #{변경가격}원

[변경 사유 및 개선사항]
#{변경사유}에 따라 서비스 품질 개선을 위해 가격을 조정합니다.
주요 개선사항: #{개선사항}

[기존 이용자 안내]
- 현재 이용 중인 서비스: #{유예기간}까지 기존 가격 적용
- 자동 연장 서비스: 변경된 가격으로 갱신
- 서비스 해지 희망: #{해지마감일}까지 신청 가능

[문의 및 지원]
- 고객센터: #{고객센터번호}
- 상담시간: 평일 09:00-18:00
- 온라인 문의: #{문의링크}

※ 본 메시지는 정보통신망법에 따라 서비스 약관 변경 안내를 위해 발송된 정보성 메시지입니다.`,
		`[#{매장명} 방문 예약 확인]

#{고객명}님, 안녕하세요.
#{매장명} 방문 예약이 완료되었습니다.

▶ 예약 정보
- 예약번호: #{예약번호}
- 방문일시: #{방문일시}
- 예상 소요시간: #{소요시간}
- 담당 직원: #{담당자명}

▶ 매장 정보
- 위치: #{매장주소}
- 연락처: #{매장전화번호}
- 주차: #{주차안내}

[방문 전 준비사항]
- 신분증 지참 필수 (본인 확인)
- 예약 10분 전 도착 권장
- 마스크 착용 협조
- 예약 확인 문자 제시

[교통 및 위치 안내]
- 대중교통: #{교통편안내}
- 자가용: #{길찾기정보}
- 주변 랜드마크: #{랜드마크}

[예약 변경 및 취소]
방문 예정일 1일 전까지 변경/취소 가능
- 전화: #{매장전화번호}
- 온라인: #{변경링크}
- 문자 회신으로도 변경 가능

※ 본 메시지는 매장 방문 예약 신청고객에게 발송되는 예약 확인 메시지입니다.`,
		`[#{행사명} 참가 안내]

#{수신자명}님, 안녕하세요.
#{주최기관}에서 개최하는 #{행사명} 참가를 안내드립니다.

▶ 행사 개요
- 행사명: #{행사명}
- 일시: #{행사일시}
- 장소: #{행사장소}
- 대상: #{참가대상}
- 참가비: #{참가비}

▶ 프로그램 일정
#{프로그램일정상세}

▶ 참가 신청
- 신청 방법: #{신청방법}
- 신청 마감: #{신청마감일}
- 신청 문의: #{신청문의전화}
- 온라인 신청: #{신청링크}

[준비물 및 복장]
- 필수 준비물: #{필수준비물}
- 권장 복장: #{복장안내}
- 개인 준비물: #{개인준비물}

[행사장 안내]
- 상세 주소: #{상세주소}
- 교통편: #{교통편}
- 주차 시설: #{주차정보}
- 편의 시설: #{편의시설}

[주의사항 및 안내]
- 코로나19 방역수칙 준수
- 행사 당일 발열체크 실시
- 우천 시 일정: #{우천시대안}
- 기타 문의: #{기타문의처}

※ 본 메시지는 #{행사명} 관심 등록자에게 발송되는 행사 안내 메시지입니다.`,
	}
}
